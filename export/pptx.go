package export

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/render"
)

// PPTX generation writes the OOXML parts directly: one title slide, one
// section-header slide per module and one content slide per lesson. A slide
// stops taking blocks once the vertical cursor passes slideHeightLimit;
// overflow blocks are dropped from that slide by design.

const (
	emuPerInch       = 914400
	slideTextLimit   = 200
	slideHeightLimit = 6.5
)

type pptxSlide struct {
	bgColor string
	shapes  []string
	images  []pptxImage
}

type pptxImage struct {
	name string // media file name inside the archive
	data []byte
	ext  string
	x, y float64
	w, h float64
}

func emu(inches float64) int { return int(inches * emuPerInch) }

type textOpts struct {
	x, y, w, h float64
	size       int // points
	bold       bool
	color      string
	align      string // ctr for centered
}

func (s *pptxSlide) addText(text string, o textOpts) {
	align := ""
	if o.align != "" {
		align = fmt.Sprintf(` algn="%s"`, o.align)
	}
	bold := "0"
	if o.bold {
		bold = "1"
	}
	color := o.color
	if color == "" {
		color = "363636"
	}
	sp := fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`+
		`<p:txBody><a:bodyPr wrap="square" anchor="t"/><a:lstStyle/><a:p><a:pPr%s/><a:r><a:rPr lang="en-US" sz="%d" b="%s" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
		len(s.shapes)+2, len(s.shapes)+2,
		emu(o.x), emu(o.y), emu(o.w), emu(o.h),
		align, o.size*100, bold, color, xmlEscape(text))
	s.shapes = append(s.shapes, sp)
}

func xmlEscape(s string) string {
	return html.EscapeString(s)
}

// truncateText shortens block text to the per-slide budget with an ellipsis.
func truncateText(s string) string {
	runes := []rune(s)
	if len(runes) <= slideTextLimit {
		return s
	}
	return string(runes[:slideTextLimit]) + "..."
}

// fetchImage resolves a block's image content to raw bytes. Data URLs are
// decoded inline, anything else is fetched over HTTP.
func fetchImage(url string) ([]byte, string, error) {
	if strings.HasPrefix(url, "data:") {
		meta, payload, found := strings.Cut(url, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data url")
		}
		ext := "png"
		if strings.Contains(meta, "image/jpeg") || strings.Contains(meta, "image/jpg") {
			ext = "jpeg"
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("decode data url: %w", err)
		}
		return data, ext, nil
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, "", err
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("fetch image: status %d", resp.StatusCode())
	}
	ext := "png"
	if ct := resp.Header().Get("Content-Type"); strings.Contains(ct, "jpeg") || strings.Contains(ct, "jpg") {
		ext = "jpeg"
	}
	return resp.Body(), ext, nil
}

// GeneratePPTX builds the course slide deck. Slide count is always
// 1 + len(modules) + len(lessons); a failed image embed degrades to a text
// placeholder instead of aborting the export.
func GeneratePPTX(pkg *CoursePackage) ([]byte, error) {
	var slides []*pptxSlide

	title := &pptxSlide{}
	title.addText(pkg.Course.Title, textOpts{x: 1, y: 1.5, w: 8, h: 1.5, size: 44, bold: true})
	desc := pkg.Course.Description
	if desc == "" {
		desc = "Course presentation"
	}
	title.addText(desc, textOpts{x: 1, y: 3, w: 8, h: 1, size: 24, color: "757575"})
	slides = append(slides, title)

	imageCounter := 0
	for _, mod := range pkg.SortedModules() {
		header := &pptxSlide{bgColor: "1E293B"}
		header.addText(mod.Title, textOpts{x: 0.5, y: 3.2, w: 9, h: 1, size: 36, color: "FFFFFF", align: "ctr"})
		slides = append(slides, header)

		for _, lesson := range pkg.LessonsFor(mod.ID) {
			slide := &pptxSlide{}
			slide.addText(lesson.Title, textOpts{x: 0.5, y: 0.5, w: 9, h: 0.8, size: 24, bold: true, color: "0078D7"})

			yPos := 1.5
			for _, b := range lesson.Blocks {
				if yPos > slideHeightLimit {
					break
				}
				switch b.Type {
				case models.BlockText, models.BlockQuote, models.BlockCallout, models.BlockNote:
					slide.addText(truncateText(b.Content), textOpts{x: 0.5, y: yPos, w: 9, h: 1, size: 14})
					yPos += 1.2
				case models.BlockList:
					items := render.ListItems(b.Content)
					if len(items) > 4 {
						items = items[:4]
					}
					for _, item := range items {
						slide.addText("• "+item, textOpts{x: 0.8, y: yPos, w: 8.5, h: 0.4, size: 14})
						yPos += 0.5
					}
				case models.BlockImage:
					data, ext, err := fetchImage(b.Content)
					if err != nil {
						slide.addText("[Image]", textOpts{x: 0.5, y: yPos, w: 4, h: 0.4, size: 10})
						yPos += 0.5
						break
					}
					imageCounter++
					slide.images = append(slide.images, pptxImage{
						name: fmt.Sprintf("image%d.%s", imageCounter, ext),
						data: data, ext: ext,
						x: 0.5, y: yPos, w: 4, h: 2.5,
					})
					yPos += 3
				case models.BlockDivider, models.BlockAudio, models.BlockVideoLink, models.BlockPDFLink:
					// not representable on a slide
				default:
					slide.addText(fmt.Sprintf("[Unsupported: %s]", b.Type), textOpts{x: 0.5, y: yPos, w: 6, h: 0.4, size: 10})
					yPos += 0.5
				}
			}
			slides = append(slides, slide)
		}
	}

	return writeDeck(slides)
}

func writeDeck(slides []*pptxSlide) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	var overrides strings.Builder
	for i := range slides {
		fmt.Fprintf(&overrides, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Default Extension="png" ContentType="image/png"/>` +
		`<Default Extension="jpeg" ContentType="image/jpeg"/>` +
		`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` +
		`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>` +
		`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>` +
		`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>` +
		overrides.String() +
		`</Types>`
	if err := writeZipFile(zw, "[Content_Types].xml", []byte(contentTypes)); err != nil {
		return nil, err
	}

	rootRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
		`</Relationships>`
	if err := writeZipFile(zw, "_rels/.rels", []byte(rootRels)); err != nil {
		return nil, err
	}

	var slideIDs, presRels strings.Builder
	presRels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	presRels.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range slides {
		rID := i + 2
		fmt.Fprintf(&slideIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, rID)
		fmt.Fprintf(&presRels, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, rID, i+1)
	}
	presRels.WriteString(`</Relationships>`)

	presentation := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>` +
		`<p:sldIdLst>` + slideIDs.String() + `</p:sldIdLst>` +
		fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="%d" cy="%d"/>`, emu(10), emu(7.5), emu(7.5), emu(10)) +
		`</p:presentation>`
	if err := writeZipFile(zw, "ppt/presentation.xml", []byte(presentation)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "ppt/_rels/presentation.xml.rels", []byte(presRels.String())); err != nil {
		return nil, err
	}

	if err := writeZipFile(zw, "ppt/slideMasters/slideMaster1.xml", []byte(slideMasterXML)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(slideMasterRels)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutXML)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(slideLayoutRels)); err != nil {
		return nil, err
	}
	if err := writeZipFile(zw, "ppt/theme/theme1.xml", []byte(themeXML)); err != nil {
		return nil, err
	}

	for i, slide := range slides {
		body, rels, media := renderSlide(slide)
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		if err := writeZipFile(zw, name, []byte(body)); err != nil {
			return nil, err
		}
		if err := writeZipFile(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), []byte(rels)); err != nil {
			return nil, err
		}
		for _, img := range media {
			if err := writeZipFile(zw, "ppt/media/"+img.name, img.data); err != nil {
				return nil, err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close deck: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSlide(slide *pptxSlide) (body, rels string, media []pptxImage) {
	var relsSB strings.Builder
	relsSB.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	relsSB.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)

	var pics strings.Builder
	for i, img := range slide.images {
		rID := i + 2
		fmt.Fprintf(&relsSB, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/%s"/>`, rID, img.name)
		fmt.Fprintf(&pics, `<p:pic><p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`+
			`<p:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`+
			`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
			100+i, img.name, rID, emu(img.x), emu(img.y), emu(img.w), emu(img.h))
	}
	relsSB.WriteString(`</Relationships>`)

	bg := ""
	if slide.bgColor != "" {
		bg = fmt.Sprintf(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, slide.bgColor)
	}

	body = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld>` + bg + `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		strings.Join(slide.shapes, "") + pics.String() +
		`</p:spTree></p:cSld></p:sld>`
	return body, relsSB.String(), slide.images
}

const slideMasterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
	`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const slideLayoutXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">` +
	`<p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const themeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme"><a:themeElements>` +
	`<a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme>` +
	`<a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>` +
	`<a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
	`<a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme>` +
	`</a:themeElements></a:theme>`
