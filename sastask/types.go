package sastask

// FactPair names one variable/value assignment (sas_task.cc's FactPair).
type FactPair struct {
	Var   int
	Value int
}

// Variable is one SAS+ state variable: its declared name, axiom layer
// (-1 for a non-axiom variable), domain size, and the human-readable name
// of each of its values.
type Variable struct {
	Name       string
	AxiomLayer int
	Domain     int
	FactNames  []string
}

// MutexGroup is a set of pairwise-inconsistent facts (sas_task.cc's
// read_mutexes invariant group).
type MutexGroup struct {
	Facts []FactPair
}

// Effect is one post-condition of an operator or axiom, guarded by zero or
// more conditions (sas_operator.cc's SASEffect).
type Effect struct {
	Conditions []FactPair
	Var        int
	Value      int
}

// Operator is one SAS+ operator (or axiom, when IsAxiom is true):
// preconditions, conditional effects, and an integer cost (sas_operator.cc's
// SASOperator, cost already resolved against the metric flag the way
// SASOperator's constructor does: 1 when the task doesn't use the metric,
// the declared cost otherwise).
type Operator struct {
	Name          string
	IsAxiom       bool
	Preconditions []FactPair
	Effects       []Effect
	Cost          int
}

// Task is the parsed SAS+ textual task: every section read_from_file
// reads, in the same order they appear in the file.
type Task struct {
	UsesMetric bool
	Variables  []Variable
	Mutexes    []MutexGroup
	Initial    []int
	Goal       []FactPair
	Operators  []Operator
	Axioms     []Operator
}
