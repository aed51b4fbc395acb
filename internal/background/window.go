package background

// searchOrder returns line indices in anchor-first, wraparound order.
// With anchor < 0 the order is simply top to bottom. The background
// section usually sits mid-post, so starting there and wrapping finds
// the right line before any quoted reply text above it can match.
func searchOrder(n, anchor int) []int {
	order := make([]int, 0, n)
	if anchor < 0 || anchor >= n {
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order
	}
	for i := anchor; i < n; i++ {
		order = append(order, i)
	}
	for i := 0; i < anchor; i++ {
		order = append(order, i)
	}
	return order
}
