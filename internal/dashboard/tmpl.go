package dashboard

// pageTemplate is the whole dashboard: header with the Learn More fold,
// the two category dropdowns, the Leaflet map and the datetime slider.
// The script fetches /api/routes on every control change and replaces the
// route layer wholesale, so the map never carries stale elements.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;900&display=swap">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
body { font-family: 'Roboto', sans-serif; margin: 0; background-color: #f2f2f2; }
.pretty-container { margin: 10px; padding: 10px; background-color: white; border-radius: 5px; box-shadow: 0 1px 3px rgba(0,0,0,0.2); }
h1 { font-weight: 900; font-size: 39px; margin: 10px; }
#collapse { padding-left: 15px; padding-right: 50px; }
#collapse h5 { color: #00008B; margin-bottom: 4px; }
#collapse p { margin-top: 0; }
#collapse-button { display: inline-block; margin: 0 0 15px 10px; padding: 6px 12px; background-color: white; color: steelblue; border: 1px solid steelblue; border-radius: 4px; text-decoration: none; }
.controls { display: flex; justify-content: space-between; margin: 0 10px; }
.control { width: 48%; display: flex; flex-direction: column; }
.control select { padding: 4px; margin-top: 4px; }
.map-info { text-align: right; padding: 10px; font-size: 12px; }
#map-info-tooltip { display: inline-block; text-align: center; color: white; background-color: black; border-radius: 50%; width: 18px; height: 18px; line-height: 18px; margin-left: 10px; cursor: pointer; }
#map { width: 100%; height: 700px; }
.slider-row { margin-top: 20px; padding: 0 10px 15px 10px; }
#datetime-slider { width: 100%; }
#slider-marks { display: flex; justify-content: space-between; }
#slider-marks span { font-size: 10px; max-width: 45px; text-align: center; white-space: nowrap; }
</style>
</head>
<body>
<div class="pretty-container">
  <div id="header">
    <h1>{{.Title}}</h1>
    {{if .AboutOpen}}
    <div id="collapse">
      <h5>What is the purpose of this dashboard?</h5>
      <p>This dashboard aims to visualize mobility data over time, showing the count of people moving from various source to destination categories.</p>
      <h5>How to use the dashboard?</h5>
      <p>Use the filters to select different source and destination categories. The map will update to show the routes and points accordingly.</p>
      <h5>Have any questions?</h5>
      <p>Feel free to reach out to Zainab Akhtar, at <a href="mailto:zakhtar@alumni.cmu.edu">zakhtar@alumni.cmu.edu</a></p>
    </div>
    {{end}}
    <div>
      <a id="collapse-button" href="/?about={{.AboutState}}&amp;toggle=1">Learn more</a>
    </div>
  </div>
  <div class="controls">
    <div class="control">
      <label for="source-category">Source Category</label>
      <select id="source-category">
        {{range .SourceCategories}}<option value="{{.}}">{{.}}</option>
        {{end}}
      </select>
    </div>
    <div class="control">
      <label for="destination-category">Destination Category</label>
      <select id="destination-category">
        {{range .DestinationCategories}}<option value="{{.}}">{{.}}</option>
        {{end}}
      </select>
    </div>
  </div>
  <div class="map-info">
    <span>Map Information</span>
    <span id="map-info-tooltip" title="Use the filters to select different source and destination categories as well as the relevant date/time from the slider. For the slider (1) represents the first 8 hours of the day, (2) is for the second part and (3) is for the last part of the day.">?</span>
  </div>
  <div id="map"></div>
  <div class="slider-row">
    <input type="range" id="datetime-slider" min="0" max="{{.MaxIndex}}" value="0" step="1">
    <div id="slider-marks">
      {{range .Marks}}<span>{{.Label}}</span>
      {{end}}
    </div>
  </div>
</div>
<script>
var boot = {{.Boot}};

var map = L.map('map').setView(boot.center, boot.zoom);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var routeLayer = L.layerGroup().addTo(map);

var originIcon = L.icon({
  iconUrl: 'https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/marker-icon-2x-green.png',
  iconSize: [8, 14]
});
var destinationIcon = L.icon({
  iconUrl: 'https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/marker-icon-2x-red.png',
  iconSize: [8, 14]
});

var slider = document.getElementById('datetime-slider');
var sourceSelect = document.getElementById('source-category');
var destinationSelect = document.getElementById('destination-category');

function refresh() {
  var params = new URLSearchParams({
    t: slider.value,
    source: sourceSelect.value,
    destination: destinationSelect.value
  });
  fetch('/api/routes?' + params.toString())
    .then(function (res) {
      if (!res.ok) {
        throw new Error('routes request failed: ' + res.status);
      }
      return res.json();
    })
    .then(function (fc) {
      routeLayer.clearLayers();
      L.geoJSON(fc, {
        pointToLayer: function (feature, latlng) {
          var icon = feature.properties.variant === 'origin' ? originIcon : destinationIcon;
          return L.marker(latlng, { icon: icon }).bindTooltip(feature.properties.label);
        },
        style: function () {
          return { color: 'blue', weight: 1 };
        }
      }).addTo(routeLayer);
    })
    .catch(function (err) {
      console.error(err);
    });
}

slider.addEventListener('change', refresh);
sourceSelect.addEventListener('change', refresh);
destinationSelect.addEventListener('change', refresh);
refresh();
</script>
</body>
</html>
`
