// Package generator compiles schema items into TypeScript model files.
package generator

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ridoystarlord/tsmodel/schema"
)

// File is a generated file. Name is relative to the output folder.
type File struct {
	Name    string
	Content string
}

// ItemOutput holds the files of one item kind and maps item names to file names.
type ItemOutput struct {
	Files []File
	Map   map[string]string
}

// Output is the result of a compilation run.
type Output struct {
	Table ItemOutput
	Enum  ItemOutput
}

// Files returns all generated files, enums first.
func (o *Output) Files() []File {
	files := make([]File, 0, len(o.Enum.Files)+len(o.Table.Files))
	files = append(files, o.Enum.Files...)
	return append(files, o.Table.Files...)
}

// itemResult is the output of a single item.
type itemResult struct {
	file File
	name string
	kind schema.ItemKind
}

// Compile emits one file per table and per enum in items. Output order follows
// input order. Compilation is all or nothing: if any item fails, the error of
// the first failing item in input order is returned and no files are.
func Compile(items []schema.Item, opts ...Option) (*Output, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(items); err != nil {
		return nil, err
	}

	results := make([]itemResult, len(items))
	errs := make([]error, len(items))

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for i, it := range items {
		eg.Go(func() error {
			results[i], errs[i] = emitItem(items, it, cfg)
			return nil
		})
	}
	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := &Output{
		Table: ItemOutput{Map: make(map[string]string)},
		Enum:  ItemOutput{Map: make(map[string]string)},
	}
	for _, r := range results {
		bucket := &out.Table
		if r.kind == schema.KindEnum {
			bucket = &out.Enum
		}
		bucket.Files = append(bucket.Files, r.file)
		bucket.Map[r.name] = r.file.Name
	}
	return out, nil
}

func emitItem(items []schema.Item, it schema.Item, cfg *Config) (itemResult, error) {
	switch it := it.(type) {
	case *schema.Table:
		f, err := EmitTable(items, it, cfg.Annotations)
		if err != nil {
			return itemResult{}, err
		}
		return itemResult{file: f, name: it.Name, kind: schema.KindTable}, nil
	case *schema.Enum:
		return itemResult{file: EmitEnum(it), name: it.Name, kind: schema.KindEnum}, nil
	default:
		return itemResult{}, fmt.Errorf("tsmodel: unknown item %T", it)
	}
}

func checkDuplicates(items []schema.Item) error {
	seen := make(map[schema.ItemKind]map[string]bool)
	for _, it := range items {
		names := seen[it.Kind()]
		if names == nil {
			names = make(map[string]bool)
			seen[it.Kind()] = names
		}
		if names[it.ItemName()] {
			return &DuplicateNameError{Kind: it.Kind(), Name: it.ItemName()}
		}
		names[it.ItemName()] = true
	}
	return nil
}
