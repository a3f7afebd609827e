package gen

import "github.com/termgen/go-termgen/platform/ops"

// Register adds every generator operation, including the recursive
// auxiliaries, to a registry.
func Register(r *ops.Registry) error {
	all := []*ops.Op{
		Braced, Typedef,
		Struct, AnonStruct,
		Union, AnonUnion,
		Enum, AnonEnum,
		IndexedParams, IndexedFields,
		IndexedInitializerList, IndexedArgs,
		indexedItemsAux, indexedParamsAux, indexedFieldsAux,
	}
	for _, op := range all {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}
