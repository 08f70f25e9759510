// Sparse contrast coding of assignments: represent an assignment as the set
// of entries that differ from a reference. Encode and Decode are inverse
// operations for any assignment over the reference's node set.
package infer

import "fmt"

// ContrastEncode returns the entries of w whose value differs from wRef.
// Every node of w must exist in wRef (else ErrReferenceMissing). The result
// may be empty when w equals wRef on all shared nodes.
// Complexity: O(|w|).
func ContrastEncode[V comparable](w, wRef map[string]V) (map[string]V, error) {
	delta := make(map[string]V)
	for id, v := range w {
		ref, ok := wRef[id]
		if !ok {
			return nil, fmt.Errorf("node %q: %w", id, ErrReferenceMissing)
		}
		if v != ref {
			delta[id] = v
		}
	}

	return delta, nil
}

// ContrastDecode expands a sparse delta back into a total assignment over
// wRef's node set: delta values where present, reference values elsewhere.
// Keys of delta outside wRef are ignored, mirroring Encode's domain.
// Complexity: O(|wRef|).
func ContrastDecode[V comparable](delta, wRef map[string]V) map[string]V {
	w := make(map[string]V, len(wRef))
	for id, ref := range wRef {
		if v, ok := delta[id]; ok {
			w[id] = v
		} else {
			w[id] = ref
		}
	}

	return w
}
