package generator

import (
	"strings"

	"github.com/ridoystarlord/tsmodel/schema"
)

// EmitEnum renders an enum file. Members keep their declared order.
func EmitEnum(e *schema.Enum) File {
	lines := make([]string, 0, len(e.Members)+2)
	lines = append(lines, "export enum "+e.Name+" {")
	for _, m := range e.Members {
		lines = append(lines, indent+quote(m)+" = "+quote(m)+",")
	}
	lines = append(lines, "};")
	return File{
		Name:    FileName(schema.KindEnum, e.Name),
		Content: strings.Join(lines, "\n") + "\n",
	}
}
