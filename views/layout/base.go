package layout

import (
	"context"

	"github.com/a-h/templ"
	"github.com/loganlanou/popx/internal/notify"
	"github.com/loganlanou/popx/views/components"
)

// liveScript reloads the page when another tab changes this browser's session
// and flips password visibility in place
const liveScript = `<script>
(function () {
  var body = document.body;
  var authenticated = body.dataset.authenticated === "true";
  var loading = body.dataset.loading === "true";
  var submitting = false;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws/session");
  ws.onmessage = function (ev) {
    if (submitting) {
      return;
    }
    var state = JSON.parse(ev.data);
    if ((state.user !== null) !== authenticated || state.isLoading !== loading) {
      location.reload();
    }
  };
  document.addEventListener("click", function (ev) {
    var toggle = ev.target.closest("button[data-password-toggle]");
    if (!toggle) {
      return;
    }
    ev.preventDefault();
    var input = toggle.form.querySelector("input[name=password]");
    var show = input.type === "password";
    input.type = show ? "text" : "password";
    toggle.textContent = show ? "Hide" : "Show";
    toggle.setAttribute("aria-label", show ? "Hide password" : "Show password");
    fetch("/api/form/password-visibility", { method: "POST", credentials: "same-origin" });
  });
  document.addEventListener("submit", function (ev) {
    submitting = true;
    var btn = ev.target.querySelector("button[data-loading-label]");
    if (btn && ev.submitter === btn) {
      btn.textContent = btn.dataset.loadingLabel;
    }
  });
})();
</script>`

// Base renders the HTML document around body
func Base(meta PageMeta, authenticated, loading bool, toasts []notify.Notification, body templ.Component) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Printf(`<title>%s</title>`, components.Esc(meta.Title))
		hw.Printf(`<meta name="description" content="%s">`, components.Esc(meta.Description))
		hw.Printf(`<link rel="canonical" href="%s">`, components.Esc(meta.CanonicalURL))
		hw.Printf(`<meta property="og:type" content="%s">`, components.Esc(meta.OGType))
		hw.Printf(`<meta property="og:title" content="%s">`, components.Esc(meta.OGTitle))
		hw.Printf(`<meta property="og:description" content="%s">`, components.Esc(meta.OGDescription))
		hw.Printf(`<meta property="og:url" content="%s">`, components.Esc(meta.OGURL))
		hw.Printf(`<meta property="og:site_name" content="%s">`, components.Esc(meta.OGSiteName))
		hw.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		hw.Raw(`</head>`)
		hw.Printf(`<body data-authenticated="%t" data-loading="%t">`, authenticated, loading)
		hw.Render(ctx, components.Toasts(toasts))
		hw.Render(ctx, body)
		hw.Raw(liveScript)
		hw.Raw(`</body></html>`)
	})
}
