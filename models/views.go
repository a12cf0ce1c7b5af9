package models

// FormView is the view model of a page holding a form. Values pre-fills the
// fields; Error carries a user facing message after a failed submission.
type FormView struct {
	Form   string `json:"form"`
	Values any    `json:"values,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ProfileView is the view model of the profile page.
type ProfileView struct {
	User User `json:"user"`
}

// UsersView is the view model of the administrator's user list.
type UsersView struct {
	Users []User `json:"users"`
}

// BoardView is the view model of the public listing.
// Ads is a []PublicAdView or []MemberAdView, see [ProjectAds].
type BoardView struct {
	Ads      any  `json:"ads"`
	LoggedIn bool `json:"logged_in"`
	IsAdmin  bool `json:"is_admin"`
}

// AppInfoView is returned by the version endpoint.
type AppInfoView struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
