// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Ad is a user-submitted listing owned by exactly one user.
type Ad struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Ad model.
func (a Ad) TableName() string {
	return "ads"
}

// AdListing is one row of the public board: an ad joined with its author.
// It always carries the author's email; callers must project it through
// [ProjectAds] before it leaves the process.
type AdListing struct {
	Ad

	AuthorLogin    string
	AuthorFullName string
	AuthorEmail    string
}

// PublicAdView is the projection shown to anonymous visitors.
type PublicAdView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
}

// MemberAdView is the projection shown to signed-in visitors; it adds the
// author's email.
type MemberAdView struct {
	PublicAdView
	AuthorEmail string `json:"author_email"`
}

// PublicAd builds the anonymous projection of a listing.
func PublicAd(l AdListing) PublicAdView {
	return PublicAdView{
		ID:         l.ID,
		Title:      l.Title,
		Content:    l.Content,
		Author:     l.AuthorLogin,
		AuthorName: l.AuthorFullName,
	}
}

// MemberAd builds the signed-in projection of a listing.
func MemberAd(l AdListing) MemberAdView {
	return MemberAdView{
		PublicAdView: PublicAd(l),
		AuthorEmail:  l.AuthorEmail,
	}
}

// ProjectAds selects the projection variant by the viewer's state: the
// whole page is either public or member shaped, never mixed.
// The returned value is a []PublicAdView or a []MemberAdView.
func ProjectAds(listings []AdListing, viewer Identity) any {
	if viewer.IsAuthenticated() {
		views := make([]MemberAdView, 0, len(listings))
		for _, l := range listings {
			views = append(views, MemberAd(l))
		}
		return views
	}

	views := make([]PublicAdView, 0, len(listings))
	for _, l := range listings {
		views = append(views, PublicAd(l))
	}
	return views
}

// AdDraft carries the editable fields of an ad.
type AdDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
