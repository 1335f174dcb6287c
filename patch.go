package sdlrpc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danielgtaylor/shorthand/v2"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch content types accepted by PatchParameters.
const (
	MergePatchJSON      = "application/merge-patch+json"
	JSONPatchJSON       = "application/json-patch+json"
	MergePatchShorthand = "application/merge-patch+shorthand"
)

// PatchParameters applies a patch to the wire form of s and decodes the
// result back into it. Supported content types are RFC 7396 merge patches,
// RFC 6902 JSON patches and shorthand merge patches. A merge patch `null`
// removes the key. On error s is left unchanged.
//
//	err := sdlrpc.PatchParameters(status, sdlrpc.MergePatchShorthand, []byte(`actualGear: DRIVE`))
func PatchParameters(s *Struct, contentType string, patch []byte) error {
	orig, err := json.Marshal(s.Parameters())
	if err != nil {
		return err
	}

	var patched []byte
	switch strings.Split(contentType, ";")[0] {
	case JSONPatchJSON:
		p, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPatch, err)
		}
		patched, err = p.Apply(orig)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPatch, err)
		}
	case MergePatchJSON, "application/json", "":
		patched, err = jsonpatch.MergePatch(orig, patch)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPatch, err)
		}
	case MergePatchShorthand:
		var tmp any
		if err := json.Unmarshal(orig, &tmp); err != nil {
			return err
		}
		tmp, err = shorthand.Unmarshal(string(patch), shorthand.ParseOptions{
			ForceStringKeys: true,
		}, tmp)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPatch, err)
		}
		return s.SetParameters(tmp)
	default:
		return fmt.Errorf("%w: content type should be one of %s, %s or %s", ErrPatch, MergePatchJSON, JSONPatchJSON, MergePatchShorthand)
	}

	var tree any
	if err := json.Unmarshal(patched, &tree); err != nil {
		return fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return s.SetParameters(tree)
}
