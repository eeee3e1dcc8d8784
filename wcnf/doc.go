// Package wcnf writes and reads ground weighted clauses in the weighted DIMACS (WCNF) format,
// so that they can be fed to any MAXSAT solver.
//
// Ground atoms are numbered from 1, in lexicographic order of their textual representation,
// and the association is recorded in comments between the header and the clauses.
// For instance, the clauses
//
//	not Friends(A,B) or Smokes(B) : 1.5
//	Smokes(A) : 0.25
//
// are written, with a precision of 100, as
//
//	p wcnf 3 2 176
//	c Friends(A,B)=1
//	c Smokes(A)=2
//	c Smokes(B)=3
//	150 -1 3 0
//	25 2 0
//
// Weights are scaled by the precision and rounded, since the format only allows integer weights.
// The top weight is greater than the sum of all weights, so that no clause is hard.
package wcnf
