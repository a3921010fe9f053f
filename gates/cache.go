package gates

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// multiToffoliCache holds constructed multi-controlled Toffoli matrices by
// qubit count; the matrices grow as 4^n, so rebuilding them per lookup is
// wasteful for repeated simulation runs. Cached matrices are shared and must
// not be mutated by callers.
var multiToffoliCache *lru.Cache[int, Matrix]

func init() {
	var err error
	multiToffoliCache, err = lru.New[int, Matrix](16)
	if err != nil {
		panic(err)
	}
}
