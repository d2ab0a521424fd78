// SPDX-License-Identifier: MIT

package avl

import "fmt"

// Check verifies ordering, balance, stored heights and size.
func (t *Tree[T]) Check() error {
	count := 0
	var check func(n *node[T], lo, hi *T) (int, error)
	check = func(n *node[T], lo, hi *T) (int, error) {
		if n == nil {
			return 0, nil
		}
		count++
		if lo != nil && t.cmp(*lo, n.value) >= 0 {
			return 0, fmt.Errorf("order violated at %v (lower bound %v)", n.value, *lo)
		}
		if hi != nil && t.cmp(n.value, *hi) >= 0 {
			return 0, fmt.Errorf("order violated at %v (upper bound %v)", n.value, *hi)
		}
		lh, err := check(n.left, lo, &n.value)
		if err != nil {
			return 0, err
		}
		rh, err := check(n.right, &n.value, hi)
		if err != nil {
			return 0, err
		}
		if d := lh - rh; d > 1 || d < -1 {
			return 0, fmt.Errorf("unbalanced at %v: left=%d right=%d", n.value, lh, rh)
		}
		h := 1 + max(lh, rh)
		if h != n.height {
			return 0, fmt.Errorf("stale height at %v: stored=%d actual=%d", n.value, n.height, h)
		}
		return h, nil
	}
	if _, err := check(t.root, nil, nil); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size=%d but %d nodes reachable", t.size, count)
	}

	return nil
}
