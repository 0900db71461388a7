// Package twosum finds pairs of elements that add up to a target.
package twosum

// Pair is a pair of indexes into the input slice, with I < J.
type Pair struct {
	I, J int
}

// TwoSum returns the pairs of indexes of nums whose elements sum to target, in a single pass.
//
// Each element is paired with the latest earlier element that completes it. An element that
// completes a pair is not itself available for later pairs, so for example
// TwoSum([]int{2, 7, 4, 5}, 9) is [{0 1} {2 3}]. Pairs are ordered by J.
func TwoSum(nums []int, target int) []Pair {
	var pairs []Pair
	seen := make(map[int]int, len(nums))
	for j, x := range nums {
		if i, ok := seen[target-x]; ok {
			pairs = append(pairs, Pair{I: i, J: j})
			continue
		}
		seen[x] = j
	}
	return pairs
}
