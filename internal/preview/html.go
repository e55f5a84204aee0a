package preview

import (
	"fmt"
	"strings"
)

// URIs maps sprite keys to data URIs for the rendered preview. Stage parts
// use the geometry part names with hand/foot sides collapsed ("hands",
// "feet"); the loot panel uses "loot", "loot_inner", "loot_outer".
type URIs map[string]string

func (u URIs) forPart(name string) string {
	switch name {
	case PartHandLeft, PartHandRight:
		return u["hands"]
	case PartFootLeft, PartFootRight:
		return u["feet"]
	}
	return u[name]
}

// RenderHTML renders the composed stage plus the individual-sprite panel as a
// standalone HTML fragment. Stage elements appear in resolved z order.
func RenderHTML(uris URIs, l Layout, front FrontOptions) string {
	g := Resolve(l, front)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<div style="display:flex;flex-wrap:wrap;gap:32px;align-items:flex-start;justify-content:center;">`+"\n")
	fmt.Fprintf(&b,
		`  <div style="position:relative;width:%dpx;height:%dpx;flex:0 0 auto;">`+"\n",
		g.StageWidth, g.StageHeight)

	for _, p := range g.Placements {
		src := uris.forPart(p.Name)
		if src == "" {
			continue
		}
		fmt.Fprintf(&b,
			`    <img src="%s" alt="%s" style="position:absolute;left:%dpx;top:%dpx;width:%dpx;height:%dpx;transform:%s;transform-origin:center;image-rendering:optimizeQuality;" />`+"\n",
			src, p.Name, p.Left, p.Top, p.Width, p.Height, p.Transform)
	}
	b.WriteString("  </div>\n")

	b.WriteString(`  <div style="display:flex;flex-direction:column;gap:12px;flex:0 0 auto;align-items:center;">` + "\n")
	b.WriteString(`    <div style="display:grid;grid-template-columns:repeat(2,auto);gap:16px;justify-items:center;">` + "\n")
	for _, f := range []struct {
		key     string
		caption string
		size    int
	}{
		{"body", "Body", 140},
		{"backpack", "Backpack", 148},
		{"hands", "Hands", 76},
		{"feet", "Feet", 38},
	} {
		if uris[f.key] == "" {
			continue
		}
		fmt.Fprintf(&b,
			`      <figure style="margin:0;text-align:center;"><img src="%s" width="%d" height="%d" alt="%s sprite" style="image-rendering:optimizeQuality;" /><figcaption style="font-size:0.8rem;color:#666;margin-top:4px;">%s</figcaption></figure>`+"\n",
			uris[f.key], f.size, f.size, f.caption, f.caption)
	}
	b.WriteString("    </div>\n")

	if uris["loot"] != "" {
		b.WriteString(`    <figure style="margin:0;text-align:center;">` + "\n")
		b.WriteString(`      <div style="position:relative;width:148px;height:148px;display:flex;align-items:center;justify-content:center;">` + "\n")
		for _, ring := range []struct {
			key  string
			size int
		}{
			{"loot_outer", 146},
			{"loot_inner", 148},
			{"loot", 128},
		} {
			if uris[ring.key] == "" {
				continue
			}
			fmt.Fprintf(&b,
				`        <img src="%s" style="position:absolute;top:50%%;left:50%%;transform:translate(-50%%,-50%%);width:%dpx;height:%dpx;image-rendering:optimizeQuality;" alt="%s" />`+"\n",
				uris[ring.key], ring.size, ring.size, ring.key)
		}
		b.WriteString("      </div>\n")
		b.WriteString(`      <figcaption style="font-size:0.8rem;color:#666;margin-top:4px;">Loot icon</figcaption>` + "\n")
		b.WriteString("    </figure>\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</div>\n")
	return b.String()
}

// RenderPage wraps the fragment in a minimal standalone document for the
// archive snapshot.
func RenderPage(title string, uris URIs, l Layout, front FrontOptions) string {
	return fmt.Sprintf(
		"<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body style=\"background:#2b2b2b;\">\n%s</body>\n</html>\n",
		title, RenderHTML(uris, l, front))
}
