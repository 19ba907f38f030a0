package sorting

// Every algorithm below mutates r.data only through swaps or rotations, so
// each snapshot is a permutation of the initial sequence.

// bogoSort reshuffles the whole sequence until it happens to be sorted.
// The worst case is unbounded.
func bogoSort(r *run) error {
	for !IsSorted(r.data) {
		r.engine.shuffle(r.data)
		if err := r.step(); err != nil {
			return err
		}
	}
	return nil
}

// bubbleSort counts and ticks once per swap and stops after the first pass
// without swaps.
func bubbleSort(r *run) error {
	n := len(r.data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if r.data[j] > r.data[j+1] {
				r.swap(j, j+1)
				swapped = true
				if err := r.step(); err != nil {
					return err
				}
			}
		}
		if !swapped {
			break
		}
	}
	return nil
}

// insertionSort moves each key left one position per shift.
func insertionSort(r *run) error {
	for i := 1; i < len(r.data); i++ {
		for j := i; j > 0 && r.data[j-1] > r.data[j]; j-- {
			r.swap(j-1, j)
			if err := r.step(); err != nil {
				return err
			}
		}
	}
	return nil
}

func mergeSort(r *run) error {
	return mergeRange(r, 0, len(r.data)-1)
}

// mergeRange sorts the inclusive range [left, right].
func mergeRange(r *run, left, right int) error {
	if right-left < 1 {
		return nil
	}
	mid := left + (right-left)/2
	if err := mergeRange(r, left, mid); err != nil {
		return err
	}
	if err := mergeRange(r, mid+1, right); err != nil {
		return err
	}
	return merge(r, left, mid, right)
}

// merge combines the sorted runs [left, mid] and [mid+1, right] in place.
// Each output position is one write: taking from the right run rotates that
// element down to position i, taking from the left run leaves it where it is.
// Leftovers are already in place but still count as written.
func merge(r *run, left, mid, right int) error {
	i, j := left, mid+1
	for i <= mid && j <= right {
		if r.data[i] > r.data[j] {
			v := r.data[j]
			copy(r.data[i+1:j+1], r.data[i:j])
			r.data[i] = v
			mid++
			j++
		}
		i++
		if err := r.step(); err != nil {
			return err
		}
	}
	for ; i <= right; i++ {
		if err := r.step(); err != nil {
			return err
		}
	}
	return nil
}

func quickSort(r *run) error {
	return quickRange(r, 0, len(r.data)-1)
}

func quickRange(r *run, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	p, err := partition(r, lo, hi)
	if err != nil {
		return err
	}
	if err := quickRange(r, lo, p-1); err != nil {
		return err
	}
	if err := r.emit(r.engine.cfg.Tick); err != nil {
		return err
	}
	if err := quickRange(r, p+1, hi); err != nil {
		return err
	}
	return r.emit(r.engine.cfg.Tick)
}

// partition is Lomuto's scheme with data[hi] as pivot. Every swap, including
// the final pivot placement, is one significant operation.
func partition(r *run, lo, hi int) (int, error) {
	pivot := r.data[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if r.data[j] < pivot {
			r.swap(i, j)
			i++
			if err := r.step(); err != nil {
				return 0, err
			}
		}
	}
	r.swap(i, hi)
	if err := r.step(); err != nil {
		return 0, err
	}
	return i, nil
}
