package api

import (
	"bytes"
	"html/template"
)

var indexPageTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Marketing Copy Generator</title>
    <style>
      :root {
        --brand: #1877f2;
        --bg: #f5f5f5;
        --panel: #ffffff;
        --text: #1a1a1a;
        --muted: #65676b;
        --border: #dddfe2;
        --bad: #dc2626;
        --sans: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, "Apple Color Emoji", "Segoe UI Emoji";
      }

      * { box-sizing: border-box; }
      html, body { height: 100%; }
      body { margin: 0; font-family: var(--sans); color: var(--text); background: var(--bg); }

      header { background: var(--brand); color: #fff; padding: 16px 24px; display: flex; justify-content: space-between; align-items: center; }
      header h1 { margin: 0; font-size: 22px; }
      .status-ok { background: rgba(255,255,255,0.2); padding: 6px 12px; border-radius: 16px; font-size: 14px; }
      .status-bad { background: rgba(220,38,38,0.9); padding: 6px 12px; border-radius: 16px; font-size: 14px; }

      .banner { background: #fee2e2; color: #991b1b; padding: 12px 24px; display: flex; justify-content: space-between; align-items: center; }
      .banner button { background: none; border: 0; font-size: 18px; cursor: pointer; color: inherit; }

      main { display: grid; grid-template-columns: minmax(360px, 480px) 1fr; gap: 0; min-height: calc(100% - 64px); }
      .left { background: var(--panel); border-right: 1px solid var(--border); padding: 24px; overflow-y: auto; }
      .right { padding: 24px; overflow-y: auto; }

      h2 { font-size: 22px; margin: 0 0 20px; }
      label { display: block; font-weight: 600; font-size: 14px; margin-bottom: 6px; }
      .group { margin-bottom: 16px; }
      .row { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; }
      .inline { display: flex; gap: 8px; }
      input, select, textarea { width: 100%; padding: 10px 12px; border: 1px solid var(--border); border-radius: 6px; font: inherit; }
      textarea { min-height: 80px; resize: vertical; }
      small { color: var(--muted); font-size: 12px; }
      .reset { width: auto; padding: 0 12px; border: 1px solid var(--border); border-radius: 6px; background: #f0f2f5; cursor: pointer; }

      .examples { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 20px; }
      .examples button { border: 1px solid var(--border); background: #f0f2f5; border-radius: 16px; padding: 6px 12px; cursor: pointer; font-size: 13px; }

      .actions { display: flex; gap: 8px; }
      .primary { flex: 1; background: var(--brand); color: #fff; border: 0; border-radius: 6px; padding: 14px; font-size: 16px; font-weight: 600; cursor: pointer; }
      .primary:disabled { background: #9cb4d8; cursor: not-allowed; }
      .secondary { background: #f0f2f5; border: 1px solid var(--border); border-radius: 6px; padding: 0 16px; cursor: pointer; }

      .preview-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: 20px; }
      .download { background: #42b72a; color: #fff; border-radius: 6px; padding: 10px 16px; text-decoration: none; font-weight: 600; }
      .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(360px, 1fr)); gap: 20px; }
      .card { background: var(--panel); border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.12); overflow: hidden; }
      .card-head { display: flex; align-items: center; gap: 8px; padding: 12px 16px; border-bottom: 1px solid var(--border); }
      .card-title { font-weight: 700; }
      .badge { color: #fff; border-radius: 12px; padding: 2px 10px; font-size: 12px; text-transform: capitalize; }
      .copy { margin-left: auto; border: 1px solid var(--border); background: #f0f2f5; border-radius: 6px; padding: 4px 10px; cursor: pointer; }
      .post { padding: 12px 16px; }
      .post-head { display: flex; align-items: center; gap: 8px; margin-bottom: 12px; }
      .avatar { width: 40px; height: 40px; border-radius: 50%; background: var(--brand); color: #fff; display: flex; align-items: center; justify-content: center; font-weight: 700; }
      .page-name { font-weight: 600; }
      .sponsored { color: var(--muted); font-size: 12px; }
      .hook { font-weight: 700; margin-bottom: 8px; }
      .body { white-space: pre-wrap; margin-bottom: 8px; }
      .cta { color: var(--brand); font-weight: 600; }
      .stats { padding: 8px 16px; border-top: 1px solid var(--border); color: var(--muted); font-size: 13px; }
      .empty { text-align: center; color: var(--muted); margin-top: 120px; }
    </style>
  </head>
  <body>
    <header>
      <h1>⚡ Marketing Copy Generator</h1>
      {{if .Status.Healthy}}
        <span class="status-ok">✅ API Connected{{if not .Status.ClaudeConfigured}} (Claude API not configured){{end}}</span>
      {{else}}
        <span class="status-bad">❌ API Disconnected</span>
      {{end}}
    </header>

    {{if .Error}}
    <form class="banner" method="post" action="/error/dismiss">
      <span>⚠️ {{.Error}}</span>
      <button type="submit" aria-label="Dismiss">✕</button>
    </form>
    {{end}}

    <main>
      <section class="left">
        <h2>Facebook Ad Copy Generator</h2>

        {{if .Examples}}
        <div class="examples">
          {{range .Examples}}
          <form method="post" action="/examples/{{.Index}}"><button type="submit">{{.Label}}</button></form>
          {{end}}
        </div>
        {{end}}

        <form id="copy-form" method="post" action="/generate">
          <div class="group">
            <label for="url">Product URL (vigoshop.si)</label>
            <input type="url" id="url" name="url" value="{{.Form.URL}}" placeholder="https://vigoshop.si/izdelek/product-name/" onchange="autoApply(this)" />
            <small>{{if .Scraping}}Scraping product details...{{else}}Paste URL to auto-fill product details{{end}}</small>
          </div>

          <div class="group">
            <label for="product_name">Product Name *</label>
            <input id="product_name" name="product_name" value="{{.Form.ProductName}}" placeholder="e.g., Električni čistilec zob SMILY" required />
          </div>

          <div class="group">
            <label for="price">Price *</label>
            <input id="price" name="price" value="{{.Form.Price}}" placeholder="e.g., 19,99€" required />
          </div>

          <div class="group">
            <label for="features">Key Features *</label>
            <textarea id="features" name="features" placeholder="Feature 1 | Feature 2 | Feature 3&#10;e.g., Removes plaque | USB rechargeable | 3 modes" required>{{.Form.Features}}</textarea>
          </div>

          <div class="row">
            {{template "choice" .Market}}
            {{template "choice" .Objective}}
          </div>

          <div class="row">
            <div class="group">
              <label for="model">AI Model</label>
              <select id="model" name="model">
                {{range .Models}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
              </select>
            </div>
            {{template "choice" .MaxChars}}
          </div>

          <div class="group">
            <label for="description">Additional Description</label>
            <textarea id="description" name="description" placeholder="Optional product description">{{.Form.Description}}</textarea>
          </div>

          <div class="actions">
            <button class="primary" type="submit"{{if .Loading}} disabled{{end}}>{{if .Loading}}Generating...{{else}}✨ Generate Ad Copy{{end}}</button>
            <button class="secondary" type="submit" formaction="/scrape" formnovalidate>🔍 Scrape</button>
          </div>
        </form>
      </section>

      <section class="right">
        {{if .Cards}}
        <div class="preview-head">
          <h2>Generated Ad Copy</h2>
          <a class="download" href="/export">⬇️ Download TXT</a>
        </div>
        <div class="cards">
          {{range .Cards}}
          <article class="card">
            <div class="card-head">
              <span class="card-title">{{.Title}}</span>
              <span class="badge" style="background-color: {{.Color}}">{{.AngleLabel}}</span>
              <button class="copy" type="button" data-copy="{{.FullCopy}}" onclick="copyText(this)">📋 Copy</button>
            </div>
            <div class="post">
              <div class="post-head">
                <div class="avatar">{{$.PageAvatar}}</div>
                <div>
                  <div class="page-name">{{$.PageName}}</div>
                  <div class="sponsored">{{$.PostLabel}}</div>
                </div>
              </div>
              <div class="hook">{{.Hook}}</div>
              <div class="body">{{.Body}}</div>
              <div class="cta">{{.CTA}}</div>
            </div>
            <div class="stats">Characters: {{.CharacterCount}}</div>
          </article>
          {{end}}
        </div>
        {{else}}
        <div class="empty">
          <h3>{{.EmptyTitle}}</h3>
          <p>{{.EmptyMessage}}</p>
        </div>
        {{end}}
      </section>
    </main>

    <script>
      function selectOption(el) {
        el.form.action = "/form/select/" + el.name;
        el.form.noValidate = true;
        el.form.submit();
      }
      function autoApply(el) {
        el.form.action = "/form";
        el.form.noValidate = true;
        el.form.submit();
      }
      function copyText(btn) {
        navigator.clipboard.writeText(btn.dataset.copy).then(function () {
          alert("Copied to clipboard!");
        });
      }
    </script>
  </body>
</html>
{{define "choice"}}
<div class="group">
  <label for="{{.Name}}">{{.Label}}</label>
  {{if .Custom}}
  <div class="inline">
    <input id="{{.Name}}" name="{{.Name}}" value="{{.Value}}" placeholder="{{.Placeholder}}" required />
    <button class="reset" type="submit" formaction="/form/reset/{{.Name}}" formnovalidate title="Back to presets">↶</button>
  </div>
  {{else}}
  <select id="{{.Name}}" name="{{.Name}}" onchange="selectOption(this)">
    {{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
  </select>
  {{end}}
  {{if .Hint}}<small>{{.Hint}}</small>{{end}}
</div>
{{end}}
`))

// RenderIndexHTML renders the single page
func RenderIndexHTML(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexPageTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
