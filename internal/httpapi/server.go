package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"musicdb/internal/store"
)

// EntityService captures the id-addressed operations of one catalogue entity.
type EntityService[T, P any] interface {
	List(ctx context.Context, page store.Page) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, row T) (T, error)
	Update(ctx context.Context, id int64, patch P) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

// ArtistService adds the name search to the artist workflows.
type ArtistService interface {
	EntityService[store.Artist, store.ArtistPatch]
	FindByName(ctx context.Context, name string) (store.Artist, error)
}

// LinkService captures the operations of one association, addressed by the
// pair of ids it connects.
type LinkService[T any] interface {
	List(ctx context.Context, page store.Page) ([]T, error)
	Get(ctx context.Context, left, right int64) (T, error)
	Create(ctx context.Context, link T) (T, error)
	Delete(ctx context.Context, left, right int64) (T, error)
}

// Services groups everything the HTTP layer dispatches to.
type Services struct {
	Artists   ArtistService
	Users     EntityService[store.User, store.UserPatch]
	Labels    EntityService[store.Label, store.LabelPatch]
	Albums    EntityService[store.Album, store.AlbumPatch]
	Songs     EntityService[store.Song, store.SongPatch]
	Playlists EntityService[store.Playlist, store.PlaylistPatch]

	Collaborations LinkService[store.Collaboration]
	Follows        LinkService[store.Follow]
	Affiliations   LinkService[store.Affiliation]
	Shares         LinkService[store.Share]
	Holdings       LinkService[store.Holds]
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	services Services
}

// New configures a Server over the given services.
func New(services Services) *Server {
	return &Server{services: services}
}

// Routes exposes the catalogue endpoints. Collection and item paths end with
// a slash; requests without it are redirected.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter().StrictSlash(true)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	registerEntity[store.Artist, store.ArtistPatch](r, "/artists/", "Artist", s.services.Artists, artistCreate{}, artistUpdate{})
	registerEntity[store.User, store.UserPatch](r, "/users/", "User", s.services.Users, userCreate{}, userUpdate{})
	registerEntity[store.Label, store.LabelPatch](r, "/labels/", "Label", s.services.Labels, labelCreate{}, labelUpdate{})
	registerEntity[store.Album, store.AlbumPatch](r, "/albums/", "Album", s.services.Albums, albumCreate{}, albumUpdate{})
	registerEntity[store.Song, store.SongPatch](r, "/songs/", "Song", s.services.Songs, songCreate{}, songUpdate{})
	registerEntity[store.Playlist, store.PlaylistPatch](r, "/playlists/", "Playlist", s.services.Playlists, playlistCreate{}, playlistUpdate{})

	registerLink(r, linkRoute{prefix: "/collaborations/", noun: "Collaboration", left: "id_artiste", right: "id_song"},
		s.services.Collaborations, collaborationFromKeys)
	registerLink(r, linkRoute{prefix: "/follows/", noun: "Follow", left: "id_artiste", right: "id_user"},
		s.services.Follows, followFromKeys)
	registerLink(r, linkRoute{prefix: "/affiliations/", noun: "Affiliation", left: "id_artiste", right: "id_label"},
		s.services.Affiliations, affiliationFromKeys)
	registerLink(r, linkRoute{prefix: "/shares/", noun: "Share", left: "id_user", right: "id_playlist"},
		s.services.Shares, shareFromKeys)
	registerLink(r, linkRoute{prefix: "/holds/", noun: "Holds", left: "id_song", right: "id_playlist"},
		s.services.Holdings, holdsFromKeys)

	r.HandleFunc("/search/artists/{query}", s.handleSearchArtist).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})

	return r
}
