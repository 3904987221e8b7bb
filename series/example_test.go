package series_test

import (
	"fmt"

	"github.com/danakf/recordlinkage/series"
)

// ExampleApply evaluates a trivial scorer pairwise; the missing pair comes
// back as NA at its original index.
func ExampleApply() {
	a := []series.String{series.Some("ab"), series.None()}
	b := []series.String{series.Some("ab"), series.Some("cd")}

	scores, _ := series.Apply(a, b, series.PresentPair(func(x, y string) series.Score {
		if x == y {
			return series.Value(1)
		}
		return series.Value(0)
	}))
	fmt.Println(scores[0], scores[1])
	// Output: 1 NA
}
