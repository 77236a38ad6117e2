package web

import (
	"embed"
	"html/template"

	"github.com/BruksfildServices01/appointment-booker/internal/domain/schedule"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega as páginas embutidas no binário.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{
				"displayTime": schedule.FormatDisplayTime,
			}).
			ParseFS(templatesFS, "templates/*.html"),
	)
}
