package zq

import "latticefold/ringproduct"

// OpsFor builds a ringproduct.Ops table for Elem[P], so a zq ring can serve
// as a factor of a ringproduct.Product (spec.md §4, ring product/CRT).
func OpsFor[P Params]() ringproduct.Ops[Elem[P]] {
	return ringproduct.Ops[Elem[P]]{
		Add:   Add[P],
		Sub:   Sub[P],
		Mul:   Mul[P],
		Neg:   Neg[P],
		Zero:  Zero[P],
		One:   One[P],
		Equal: Equal[P],
	}
}
