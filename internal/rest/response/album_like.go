package response

import "github.com/Guyuepp/album-catalog/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Message is the envelope of responses without a payload
type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Likes struct {
	Likes int64 `json:"likes"`
}

type AlbumLikes struct {
	Status string `json:"status"`
	Data   Likes  `json:"data"`
}

// NewAlbumLikesFromDomain: Domain -> Response
func NewAlbumLikesFromDomain(c domain.LikesCount) AlbumLikes {
	return AlbumLikes{
		Status: StatusSuccess,
		Data:   Likes{Likes: c.Likes},
	}
}
