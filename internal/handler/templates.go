package handler

import "html/template"

const dashboardTemplateName = "dashboard.html"

// Templates returns the parsed HTML templates served by the dashboard
func Templates() *template.Template {
	return template.Must(template.New(dashboardTemplateName).Parse(dashboardTemplate))
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f5f5f5; color: #1a1a2e; line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: #fff; border: 1px solid #dee2e6; border-radius: 8px; padding: 1rem; }
.chart-box h3 { font-size: .95rem; margin-bottom: .5rem; }
.chart-wrapper { position: relative; height: 300px; }
table.heatmap { border-collapse: collapse; width: 100%; }
table.heatmap td, table.heatmap th { padding: .5rem; text-align: center; border: 1px solid #fff; font-size: .85rem; }
.error { color: #dc3545; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p id="status">Loading…</p>
</header>
<div class="charts" id="charts"></div>
<script>
const fmt = (format, v) => {
  if (format === ".2f") return v.toFixed(2);
  if (format === ".1%") return (100 * v).toFixed(1) + "%";
  return String(v);
};

function heatColor(v, min, max) {
  const t = max > min ? (v - min) / (max - min) : 1;
  const hue = Math.round(120 * t);
  return "hsl(" + hue + ", 70%, 55%)";
}

function renderHeatmap(box, spec) {
  const m = spec.heatmap;
  const table = document.createElement("table");
  table.className = "heatmap";
  const head = table.insertRow();
  head.appendChild(document.createElement("th"));
  m.column_labels.forEach(label => {
    const th = document.createElement("th");
    th.textContent = label;
    head.appendChild(th);
  });
  m.values.forEach((row, i) => {
    const tr = table.insertRow();
    const th = document.createElement("th");
    th.textContent = m.row_labels[i];
    tr.appendChild(th);
    row.forEach(v => {
      const td = tr.insertCell();
      td.textContent = fmt(spec.value_format, v);
      td.style.background = heatColor(v, m.min_value, m.max_value);
    });
  });
  box.appendChild(table);
}

function renderChart(box, spec) {
  const wrapper = document.createElement("div");
  wrapper.className = "chart-wrapper";
  const canvas = document.createElement("canvas");
  wrapper.appendChild(canvas);
  box.appendChild(wrapper);

  const pie = spec.chart_type === "pie";
  const stacked = spec.chart_type === "stacked_bar";
  const labels = pie ? spec.series[0].data.map(p => p.label) : spec.categories;
  const datasets = spec.series.map(s => ({
    label: s.name,
    data: s.data.map(p => p.value),
    backgroundColor: s.color || s.data.map(p => p.color),
  }));

  new Chart(canvas, {
    type: pie ? "pie" : "bar",
    data: { labels, datasets },
    options: {
      maintainAspectRatio: false,
      plugins: {
        legend: { display: spec.show_legend },
        tooltip: { callbacks: { label: ctx => ctx.label + ": " + fmt(spec.value_format, ctx.parsed.y ?? ctx.parsed) } },
      },
      scales: pie ? {} : { x: { stacked, title: { display: !!spec.x_axis, text: spec.x_axis } },
                          y: { stacked, title: { display: !!spec.y_axis, text: spec.y_axis } } },
    },
  });
}

fetch("{{.ChartsURL}}")
  .then(r => r.json())
  .then(body => {
    const status = document.getElementById("status");
    if (body.code !== 0) {
      status.textContent = body.message + ": " + (body.error || "");
      status.className = "error";
      return;
    }
    status.textContent = "";
    const container = document.getElementById("charts");
    body.data.charts.forEach(spec => {
      const box = document.createElement("div");
      box.className = "chart-box";
      const h = document.createElement("h3");
      h.textContent = spec.title;
      box.appendChild(h);
      container.appendChild(box);
      if (spec.chart_type === "heatmap") renderHeatmap(box, spec);
      else renderChart(box, spec);
    });
  })
  .catch(err => {
    const status = document.getElementById("status");
    status.textContent = String(err);
    status.className = "error";
  });
</script>
</body>
</html>
`
