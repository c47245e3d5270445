package server

// indexHTML is the single page UI. It talks to the JSON API below and builds
// prompt downloads client side. No template literals in the script: the page
// lives inside a Go raw string.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>🚀 AI Prompt Generator</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f6f7f9; color: #1f2328; }
main { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
h1 { margin-bottom: 0.25rem; }
.tagline { color: #57606a; margin-top: 0; }
label { display: block; margin-top: 1rem; font-weight: 600; }
select, textarea { width: 100%; margin-top: 0.25rem; padding: 0.5rem; font: inherit; box-sizing: border-box; }
.checkbox { font-weight: 400; }
.checkbox input { width: auto; margin-right: 0.5rem; }
button { margin-top: 1rem; padding: 0.5rem 1.25rem; font: inherit; cursor: pointer; }
.error { color: #b42318; }
.columns { display: flex; gap: 1rem; align-items: flex-start; }
.panel { flex: 1; background: #fff; border: 1px solid #d0d7de; border-radius: 6px; padding: 1rem; min-width: 0; }
pre { white-space: pre-wrap; word-wrap: break-word; background: #f6f8fa; padding: 0.75rem; border-radius: 6px; max-height: 420px; overflow: auto; }
#status { margin-left: 0.75rem; color: #57606a; }
#results { margin-top: 1.5rem; }
</style>
</head>
<body>
<main>
<h1>🚀 AI Prompt Generator for Coding</h1>
<p class="tagline">Generate highly accurate, structured prompts optimized for coding tasks.
Choose an AI model, describe your task, and get a ready-to-use prompt!</p>

<section>
  <h2>📝 Describe Your Coding Task</h2>

  <label for="provider">Choose the AI model to generate your prompt:</label>
  <select id="provider">
    {{range .Providers}}<option value="{{.Value}}">{{.Label}}</option>
    {{end}}
  </select>

  <label for="idea">Enter your project idea or coding task:</label>
  <textarea id="idea" rows="5" placeholder="Example: Build a REST API with Flask that connects to PostgreSQL..."></textarea>

  <label for="requirements">Additional requirements (optional):</label>
  <textarea id="requirements" rows="4" placeholder="Example: Use SQLAlchemy, include JWT authentication, return JSON responses..."></textarea>

  <label class="checkbox"><input type="checkbox" id="compare"> Enable comparison mode (generates prompts from all models)</label>

  <button id="generate">🔮 Generate Prompt</button>
  <span id="status"></span>
  <p id="error" class="error" hidden></p>
</section>

<section id="results" hidden></section>
</main>

<script>
(function () {
  var generateButton = document.getElementById('generate');
  var statusEl = document.getElementById('status');
  var errorEl = document.getElementById('error');
  var resultsEl = document.getElementById('results');

  function showError(message) {
    errorEl.textContent = message;
    errorEl.hidden = false;
  }

  function download(filename, content) {
    var blob = new Blob([content], { type: 'text/markdown' });
    var link = document.createElement('a');
    link.href = URL.createObjectURL(blob);
    link.download = filename;
    link.click();
    URL.revokeObjectURL(link.href);
  }

  function renderPanel(title, data) {
    var panel = document.createElement('div');
    panel.className = 'panel';

    var heading = document.createElement('h3');
    heading.textContent = title;
    panel.appendChild(heading);

    if (data.error) {
      var err = document.createElement('p');
      err.className = 'error';
      err.textContent = data.error;
      panel.appendChild(err);
      return panel;
    }

    var pre = document.createElement('pre');
    pre.textContent = data.content;
    panel.appendChild(pre);

    var button = document.createElement('button');
    button.textContent = 'Download ' + data.filename;
    button.addEventListener('click', function () {
      download(data.filename, data.content);
    });
    panel.appendChild(button);
    return panel;
  }

  function run() {
    errorEl.hidden = true;
    resultsEl.hidden = true;
    resultsEl.textContent = '';
    resultsEl.className = '';

    var compareMode = document.getElementById('compare').checked;
    var payload = {
      project_idea: document.getElementById('idea').value,
      requirements: document.getElementById('requirements').value
    };

    var endpoint = '/api/compare';
    if (!compareMode) {
      endpoint = '/api/generate';
      payload.provider = document.getElementById('provider').value;
    }

    statusEl.textContent = compareMode ? 'Comparing models...' : 'Crafting your perfect prompt...';
    generateButton.disabled = true;

    fetch(endpoint, {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(payload)
    })
      .then(function (resp) {
        return resp.json().then(function (data) {
          return { ok: resp.ok, data: data };
        });
      })
      .then(function (result) {
        if (!result.ok) {
          showError(result.data.error || 'Request failed');
          return;
        }
        if (compareMode) {
          resultsEl.className = 'columns';
          result.data.results.forEach(function (item) {
            resultsEl.appendChild(renderPanel(item.display_name, item));
          });
        } else {
          resultsEl.appendChild(renderPanel('✅ Generated Prompt', result.data));
        }
        resultsEl.hidden = false;
      })
      .catch(function (err) {
        showError(String(err));
      })
      .finally(function () {
        statusEl.textContent = '';
        generateButton.disabled = false;
      });
  }

  generateButton.addEventListener('click', run);
})();
</script>
</body>
</html>
`
