package reporter

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/rs/zerolog"
)

// reportWriter executes a named template, optionally minifies the result and
// writes it to a stream or a file
type reportWriter struct {
	logger       zerolog.Logger
	template     *template.Template
	name         string
	minifier     *Minifier
	directoryMgr *DirectoryManager
	fileWriter   *file.FileWriter
}

func newReportWriter(logger zerolog.Logger, tmpl *template.Template, name string, minify bool) *reportWriter {
	rw := &reportWriter{
		logger:       logger,
		template:     tmpl,
		name:         name,
		directoryMgr: NewDirectoryManager(logger),
		fileWriter:   file.NewFileWriter(logger),
	}
	if minify {
		rw.minifier = NewMinifier()
	}
	return rw
}

// parseTemplate parses one embedded template with the given functions
func parseTemplate(name string, funcs template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template %s: %w", name, err)
	}
	return tmpl, nil
}

func (rw *reportWriter) render(data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := rw.template.ExecuteTemplate(&buf, rw.name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", rw.name, err)
	}
	if rw.minifier == nil {
		return buf.Bytes(), nil
	}
	return rw.minifier.Minify(MediaTypeHTML, buf.Bytes())
}

func (rw *reportWriter) writeTo(w io.Writer, data any) error {
	page, err := rw.render(data)
	if err != nil {
		return err
	}
	_, err = w.Write(page)
	return err
}

func (rw *reportWriter) writeFile(outputPath string, data any) error {
	page, err := rw.render(data)
	if err != nil {
		return err
	}
	if err := rw.directoryMgr.EnsureParentDirectory(outputPath); err != nil {
		return err
	}
	opts := file.DefaultFileWriteOptions()
	opts.Permissions = FilePermissions
	if err := rw.fileWriter.WriteFile(outputPath, page, opts); err != nil {
		rw.logger.Error().Err(err).Str("path", outputPath).Msg("Failed to write report file")
		return err
	}
	return nil
}
