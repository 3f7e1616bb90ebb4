package httpapi

import (
	"time"

	"github.com/mhartwell/equinesocial/internal/server/models"
)

// userView is the public JSON shape of a user. The password hash never
// leaves the server.
type userView struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Birthday   string `json:"birthday"`
	PageImage  string `json:"page_image"`
	Discipline string `json:"discipline"`
	About      string `json:"about"`
	Award      string `json:"award"`
}

func newUserView(u *models.User) userView {
	return userView{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		City:       u.City,
		State:      u.State,
		Country:    u.Country,
		Birthday:   u.Birthday,
		PageImage:  u.PageImage,
		Discipline: u.Discipline,
		About:      u.About,
		Award:      u.Award,
	}
}

func newUserViews(users []*models.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	return views
}

type horseView struct {
	ID         int64  `json:"id"`
	OwnerID    int64  `json:"owner_id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Birthday   string `json:"birthday"`
	PageImage  string `json:"page_image"`
	Discipline string `json:"discipline"`
	About      string `json:"about"`
	Award      string `json:"award"`
}

func newHorseView(h *models.Horse) horseView {
	return horseView{
		ID:         h.ID,
		OwnerID:    h.OwnerID,
		Name:       h.Name,
		City:       h.City,
		State:      h.State,
		Country:    h.Country,
		Birthday:   h.Birthday,
		PageImage:  h.PageImage,
		Discipline: h.Discipline,
		About:      h.About,
		Award:      h.Award,
	}
}

func newHorseViews(horses []*models.Horse) []horseView {
	views := make([]horseView, 0, len(horses))
	for _, h := range horses {
		views = append(views, newHorseView(h))
	}
	return views
}

type postView struct {
	ID            int64     `json:"id"`
	RepliesToPost int64     `json:"replies_to_post"`
	PostFrom      int64     `json:"post_from"`
	PostTo        int64     `json:"post_to"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	Text          string    `json:"text"`
}

func newPostView(p *models.Post) postView {
	return postView{
		ID:            p.ID,
		RepliesToPost: p.RepliesToPost,
		PostFrom:      p.PostFrom,
		PostTo:        p.PostTo,
		Title:         p.Title,
		Date:          p.Date,
		Text:          p.Text,
	}
}

func newPostViews(posts []*models.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newPostView(p))
	}
	return views
}
