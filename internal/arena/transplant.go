package arena

// Transplant copies every live node of src into a with remapped handles and
// returns the handle that srcRoot maps to. Tree shape and items are kept.
//
// It is all-or-nothing: on error a is unchanged. src is never modified; the
// caller decides what happens to it afterwards.
func (a *Arena[T]) Transplant(src *Arena[T], srcRoot Handle) (Handle, error) {
	if srcRoot == Nil {
		return Nil, nil
	}
	if err := a.Reserve(src.Live()); err != nil {
		return Nil, err
	}

	remap := make([]Handle, len(src.nodes))
	for i := range src.nodes {
		n := &src.nodes[i]
		if !n.live {
			remap[i] = Nil
			continue
		}
		h, err := a.Allocate(n.Item)
		if err != nil {
			// unreachable after Reserve
			return Nil, err
		}
		remap[i] = h
	}

	for i := range src.nodes {
		n := &src.nodes[i]
		if !n.live {
			continue
		}
		dst := &a.nodes[remap[i]]
		dst.Left = remapHandle(remap, n.Left)
		dst.Right = remapHandle(remap, n.Right)
		dst.Parent = remapHandle(remap, n.Parent)
	}

	return remap[srcRoot], nil
}

func remapHandle(remap []Handle, h Handle) Handle {
	if h == Nil {
		return Nil
	}
	return remap[h]
}
