package httpapi

import (
	"net/http"
	"strconv"
)

func (s *Server) handleAddUserPost(w http.ResponseWriter, r *http.Request) {
	wallOwnerID, err := pathID(r, "user_id")
	if err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	authorID, err := pathID(r, "submit_id")
	if err != nil {
		writeBadRequest(w, "invalid author id")
		return
	}

	title := r.PostFormValue("input_title")
	text := r.PostFormValue("input_post")
	if text == "" {
		writeBadRequest(w, "post text is required")
		return
	}

	var repliesTo int64
	if v := r.PostFormValue("replies_to_post"); v != "" {
		repliesTo, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeBadRequest(w, "invalid parent post id")
			return
		}
	}

	post, err := s.posts.Add(r.Context(), principalID(r.Context()), wallOwnerID, authorID, repliesTo, title, text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "post added",
		"post":    newPostView(post),
	})
}

func (s *Server) handleDeleteUserPost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "post_id")
	if err != nil {
		writeBadRequest(w, "invalid post id")
		return
	}

	// user_id is part of the historical route shape; the post record itself
	// determines whose wall it is on
	if _, err := pathID(r, "user_id"); err != nil {
		writeBadRequest(w, "invalid user id")
		return
	}

	if err := s.posts.Delete(r.Context(), principalID(r.Context()), postID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}
