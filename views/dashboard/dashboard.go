package dashboard

import (
	"context"

	"github.com/a-h/templ"
	"github.com/loganlanou/popx/internal/identity"
	"github.com/loganlanou/popx/views/components"
	"github.com/loganlanou/popx/views/helpers"
)

// Stat is one row of the placeholder statistics card
type Stat struct {
	Label string
	Value int64
	Tone  string
}

// Activity is one entry of the placeholder activity feed
type Activity struct {
	Text string
	When string
	Dot  string
}

// Stats are fixed placeholder numbers, not computed from any data
var Stats = []Stat{
	{Label: "Total Projects", Value: 12, Tone: "purple"},
	{Label: "Active Sessions", Value: 3, Tone: "blue"},
	{Label: "Completed Tasks", Value: 45, Tone: "green"},
}

var RecentActivity = []Activity{
	{Text: "Logged in successfully", When: "Just now", Dot: "bg-green-500"},
	{Text: "Profile updated", When: "2 hours ago", Dot: "bg-blue-500"},
	{Text: "New project created", When: "1 day ago", Dot: "bg-purple-500"},
}

const accountBlurb = `Lorem Ipsum Dolor Sit Amet, Consectetur Sadipscing Elitr, Sed Diam Nonumy Eirmod Tempor Invidunt Ut Labore Et Dolore Magna Aliquyam Erat, Sed Diam`

// Page renders the signed-in dashboard for user
func Page(user *identity.User) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Raw(`<div class="min-h-screen bg-gradient-to-br from-purple-50 via-blue-50 to-indigo-100 relative overflow-hidden">`)
		hw.Render(ctx, components.Background())
		hw.Raw(`<div id="dashboard" class="relative z-10 p-6">`)

		hw.Raw(`<div class="flex justify-between items-center mb-8">`)
		hw.Raw(`<h1 class="text-3xl font-bold text-gray-800">Welcome back!</h1>`)
		hw.Render(ctx, components.ActionButton("/auth/logout", "", "", "Logout", components.ButtonOutline,
			"w-auto px-4 py-2 border hover:bg-red-50 hover:border-red-200 hover:text-red-600"))
		hw.Raw(`</div>`)

		hw.Raw(`<div class="max-w-4xl mx-auto"><div class="grid md:grid-cols-2 gap-8">`)
		hw.Render(ctx, accountCard(user))
		hw.Render(ctx, statsCard())
		hw.Raw(`</div>`)
		hw.Render(ctx, activityCard())
		hw.Raw(`</div></div></div>`)
	})
}

func accountCard(user *identity.User) templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Printf(`<div class="%s">`, components.Esc(components.CardClass()))
		hw.Raw(`<h2 class="text-xl font-semibold text-gray-800 mb-6">Account Settings</h2>`)
		hw.Raw(`<div class="flex items-center space-x-4 mb-6">`)
		hw.Printf(`<img src="%s" alt="%s" class="w-16 h-16 rounded-full object-cover">`,
			components.Esc(helpers.AvatarURL(user)), components.Esc(user.Name))
		hw.Raw(`<div>`)
		hw.Printf(`<h3 id="user-name" class="font-semibold text-gray-800">%s</h3>`, components.Esc(user.Name))
		hw.Printf(`<p id="user-email" class="text-gray-600">%s</p>`, components.Esc(user.Email))
		hw.Raw(`</div></div>`)
		hw.Printf(`<p class="text-gray-600 leading-relaxed">%s</p>`, accountBlurb)
		hw.Raw(`</div>`)
	})
}

func statsCard() templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Printf(`<div class="%s">`, components.Esc(components.CardClass()))
		hw.Raw(`<h2 class="text-xl font-semibold text-gray-800 mb-6">Dashboard Stats</h2>`)
		hw.Raw(`<div class="space-y-4">`)
		for _, s := range Stats {
			hw.Printf(`<div class="flex justify-between items-center p-4 bg-%s-50 rounded-lg">`, s.Tone)
			hw.Printf(`<span class="text-gray-700">%s</span>`, components.Esc(s.Label))
			hw.Printf(`<span class="font-bold text-%s-600">%s</span>`, s.Tone, helpers.FormatInt(s.Value))
			hw.Raw(`</div>`)
		}
		hw.Raw(`</div>`)
		hw.Printf(`<button type="button" disabled class="%s">View Full Dashboard</button>`,
			components.Esc(components.ButtonClass(components.ButtonPrimary, "mt-6")))
		hw.Raw(`</div>`)
	})
}

func activityCard() templ.Component {
	return components.Component(func(ctx context.Context, hw *components.Writer) {
		hw.Printf(`<div class="%s">`, components.Esc(components.CardClass("mt-8")))
		hw.Raw(`<h2 class="text-xl font-semibold text-gray-800 mb-4">Recent Activity</h2>`)
		hw.Raw(`<div class="space-y-3">`)
		for _, a := range RecentActivity {
			hw.Raw(`<div class="flex items-center space-x-3 p-3 bg-gray-50 rounded-lg">`)
			hw.Printf(`<div class="w-2 h-2 %s rounded-full"></div>`, a.Dot)
			hw.Printf(`<span class="text-gray-700">%s</span>`, components.Esc(a.Text))
			hw.Printf(`<span class="text-gray-500 text-sm ml-auto">%s</span>`, components.Esc(a.When))
			hw.Raw(`</div>`)
		}
		hw.Raw(`</div></div>`)
	})
}
