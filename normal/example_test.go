package normal_test

import (
	"fmt"

	"github.com/crillab/gomln/fol"
	"github.com/crillab/gomln/normal"
)

func ExampleTranslate() {
	f, err := fol.ParseFormula("forall x (not Smokes(x) => exists y Friends(x, y))")
	if err != nil {
		fmt.Printf("could not parse formula: %v", err)
		return
	}
	nf, err := normal.Translate(f, []string{"A", "B"}, normal.CNF, nil)
	if err != nil {
		fmt.Printf("could not translate formula: %v", err)
		return
	}
	fmt.Println(nf)
	// Output: Smokes(x0) or Friends(x0,A) or Friends(x0,B)
}

func ExampleNormalForm_Formula() {
	f, _ := fol.ParseFormula("(P() and Q()) or R()")
	cnf, _ := normal.ToCNF(f, nil)
	dnf, _ := normal.ToDNF(f, nil)
	fmt.Println(cnf.Formula())
	fmt.Println(dnf.Formula())
	// Output:
	// P() or R() and (Q() or R())
	// P() and Q() or R()
}
