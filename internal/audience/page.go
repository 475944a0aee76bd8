package audience

import (
	"html/template"
	"io"

	"seminar/internal/deck"
)

// pageData is what the audience sees: the slide without its notes.
type pageData struct {
	Brand    string
	Tagline  string
	Section  SectionInfo
	Title    string
	Subtitle string
	Body     []deck.Block
	Sections []SectionInfo
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"kind": func(b deck.Block) string { return b.Kind.String() },
	"tone": toneClass,
	"inc":  func(i int) int { return i + 1 },
}).Parse(pageHTML))

func toneClass(t deck.Tone) string {
	switch t {
	case deck.ToneInfo:
		return "info"
	case deck.ToneWarn:
		return "warn"
	case deck.ToneGood:
		return "good"
	case deck.ToneBad:
		return "bad"
	case deck.ToneAccent:
		return "accent"
	default:
		return "neutral"
	}
}

func renderPage(w io.Writer, id deck.SectionID) error {
	slide := deck.Resolve(id)
	sections := deck.Sections()
	infos := make([]SectionInfo, len(sections))
	for i, s := range sections {
		infos[i] = SectionInfo{ID: s.ID, Label: s.Label, Badge: deck.Badge(i)}
	}
	return pageTemplate.Execute(w, pageData{
		Brand:    deck.Brand,
		Tagline:  deck.Tagline,
		Section:  Info(id),
		Title:    slide.Title,
		Subtitle: slide.Subtitle,
		Body:     slide.Body,
		Sections: infos,
	})
}

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Section.Badge}} {{.Section.Label}} · {{.Brand}}</title>
<style>
body{margin:0;font-family:system-ui,sans-serif;background:#0b1220;color:#e2e8f0}
header{display:flex;justify-content:space-between;padding:.75rem 1.5rem;border-bottom:1px solid #1e293b}
header .brand{font-weight:700;color:#2dd4bf}header .tagline{color:#64748b}
nav{display:flex;gap:.5rem;flex-wrap:wrap;padding:.5rem 1.5rem;border-bottom:1px solid #1e293b}
nav span{padding:.2rem .6rem;border-radius:999px;color:#64748b}nav span.on{background:#1e293b;color:#2dd4bf;font-weight:700}
main{max-width:70rem;margin:0 auto;padding:1.5rem}
h1{margin:0}h2.sub{color:#2dd4bf;font-weight:400;margin:.25rem 0 1.5rem}
.muted{color:#94a3b8;font-style:italic}
.callout{border-left:4px solid;padding:.5rem 1rem;font-weight:600}
pre{border-left:2px solid;padding:.5rem 1rem;white-space:pre-wrap;color:#94a3b8}
.columns{display:grid;grid-template-columns:repeat(auto-fit,minmax(18rem,1fr));gap:1.5rem}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(16rem,1fr));gap:1rem}
.card{border:1px solid #1e293b;border-radius:.5rem;padding:.75rem 1rem}.card h3{margin:0 0 .5rem;color:#2dd4bf}
.timeline li{display:flex;justify-content:space-between}
.tag{padding:0 .4rem;margin-right:.4rem;border-radius:.25rem;color:#0b1220}
.neutral{border-color:#334155}.info{border-color:#2dd4bf}.warn{border-color:#f59e0b}
.good{border-color:#22c55e}.bad{border-color:#ef4444}.accent{border-color:#d946ef}
.tag.neutral,.tag.info{background:#2dd4bf}.tag.accent{background:#d946ef}.tag.good{background:#22c55e}.tag.bad{background:#ef4444}
</style>
</head>
<body data-section="{{.Section.ID}}">
<header><span class="brand">{{.Brand}}</span><span class="tagline">{{.Tagline}}</span></header>
<nav>{{range .Sections}}<span class="{{if eq .ID $.Section.ID}}on{{end}}">{{.Badge}} {{.Label}}</span>{{end}}</nav>
<main>
<h1>{{.Title}}</h1>
{{with .Subtitle}}<h2 class="sub">{{.}}</h2>{{end}}
{{template "blocks" .Body}}
</main>
<script>
(function(){
  var current = document.body.dataset.section;
  function connect(){
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/ws");
    ws.onmessage = function(ev){
      var msg = JSON.parse(ev.data);
      if (msg.id && msg.id !== current) { location.assign("/sections/" + msg.id); }
    };
    ws.onclose = function(){ setTimeout(connect, 2000); };
  }
  connect();
})();
</script>
</body>
</html>
{{define "blocks"}}{{range .}}{{template "block" .}}{{end}}{{end}}
{{define "block"}}{{$k := kind .}}
{{- if eq $k "Paragraph"}}<p class="{{if .Muted}}muted{{end}}">{{.Text}}</p>
{{- else if eq $k "Bullets"}}<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{- else if eq $k "Numbered"}}<ol>{{range .Items}}<li>{{.}}</li>{{end}}</ol>
{{- else if eq $k "Callout"}}<p class="callout {{tone .Tone}}">{{.Text}}</p>
{{- else if eq $k "Code"}}<pre class="{{tone .Tone}}">{{.Text}}</pre>
{{- else if eq $k "Columns"}}<div class="columns">{{range $c := .Columns}}<section>
<h3>{{with $c.Tag}}<span class="tag {{tone $c.Tone}}">{{.}}</span>{{end}}{{$c.Heading}}</h3>
{{template "blocks" $c.Blocks}}</section>{{end}}</div>
{{- else if eq $k "Cards"}}<div class="cards">{{range .Cards}}<div class="card"><h3>{{.Title}}</h3><p class="muted">{{.Body}}</p></div>{{end}}</div>
{{- else if eq $k "Timeline"}}<ol class="timeline">{{range $i, $e := .Timeline}}<li><span>{{inc $i}}. {{$e.Label}}</span><span class="muted">{{$e.Time}}</span></li>{{end}}</ol>
{{- end}}
{{end}}`
