package documents

import (
	"fmt"
	"strings"

	"truckservice/internal/domain/entities"
)

// renderDraft produces the plain-text companion of the workbook: the short
// form operators paste into chats. Only materials the operator actually
// picked appear here; the workbook's full-catalog fallback does not.
func renderDraft(s *entities.OrderSession) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s / %s\n", s.LicensePlate, s.Date.Format("02.01.2006"))
	sb.WriteString(s.Workers)
	sb.WriteString("\n\n")

	sb.WriteString("РАБОТЫ:")
	for _, w := range s.SelectedWorks {
		fmt.Fprintf(&sb, "\n• %s", w.Name)
	}

	if len(s.SelectedMaterials) > 0 {
		sb.WriteString("\n\nМАТЕРИАЛЫ:")
		for _, name := range s.SelectedMaterials {
			fmt.Fprintf(&sb, "\n• %s", name)
		}
	}

	return sb.String()
}
