package tui

import "fmt"

// confirmDeleteModel asks before a stored document is destroyed.
type confirmDeleteModel struct {
	name  string
	panel string
}

func (m confirmDeleteModel) View() string {
	content := fmt.Sprintf("Удалить «%s» (%s) из хранилища?\nЗашифрованный файл будет стёрт без возможности восстановления.\n\n", m.name, m.panel)
	content += "y да    n / esc нет"
	return overlayBoxStyle.Render(content)
}
