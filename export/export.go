package export

import "fmt"

type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatPPTX Format = "pptx"
	FormatZIP  Format = "zip"
)

// IsValidFormat reports whether f names a supported export format.
func IsValidFormat(f Format) bool {
	switch f {
	case FormatJSON, FormatHTML, FormatPDF, FormatPPTX, FormatZIP:
		return true
	}
	return false
}

// Artifact is one generated export download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Generate runs the exporter for the requested format over an already
// fetched course tree. Per-block failures inside a generator degrade to
// placeholders; only systemic failures surface here.
func Generate(pkg *CoursePackage, format Format) (*Artifact, error) {
	base := SanitizeName(pkg.Course.Title)
	if base == "" {
		base = "course"
	}

	switch format {
	case FormatJSON:
		data, err := GenerateJSON(pkg)
		if err != nil {
			return nil, err
		}
		return &Artifact{Filename: base + ".json", ContentType: "application/json", Data: data}, nil
	case FormatHTML:
		return &Artifact{Filename: base + ".html", ContentType: "text/html; charset=utf-8", Data: []byte(GenerateHTML(pkg))}, nil
	case FormatPDF:
		data, err := GeneratePDF(pkg)
		if err != nil {
			return nil, err
		}
		return &Artifact{Filename: base + ".pdf", ContentType: "application/pdf", Data: data}, nil
	case FormatPPTX:
		data, err := GeneratePPTX(pkg)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			Filename:    base + ".pptx",
			ContentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
			Data:        data,
		}, nil
	case FormatZIP:
		data, err := GenerateZIP(pkg)
		if err != nil {
			return nil, err
		}
		return &Artifact{Filename: base + ".zip", ContentType: "application/zip", Data: data}, nil
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}
