package httpapi

import (
	"encoding/json"
	"net/http"

	"musicdb/internal/store"
)

// decodeLinkBody reads the two id keys named by route from a JSON object.
func decodeLinkBody(w http.ResponseWriter, r *http.Request, route linkRoute) (int64, int64, bool) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeValidation(w, decodeError(err))
		return 0, 0, false
	}

	keys := []string{route.left, route.right}
	ids := make([]int64, len(keys))
	var errs []fieldError
	for i, key := range keys {
		raw, ok := body[key]
		if !ok || string(raw) == "null" {
			errs = append(errs, fieldError{Loc: []any{"body", key}, Msg: "field required", Type: "value_error.missing"})
			continue
		}
		if err := json.Unmarshal(raw, &ids[i]); err != nil {
			errs = append(errs, fieldError{Loc: []any{"body", key}, Msg: "value is not a valid integer", Type: "type_error.integer"})
		}
	}
	if len(errs) > 0 {
		writeValidation(w, errs...)
		return 0, 0, false
	}
	return ids[0], ids[1], true
}

func collaborationFromKeys(artistID, songID int64) store.Collaboration {
	return store.Collaboration{ArtistID: artistID, SongID: songID}
}

func followFromKeys(artistID, userID int64) store.Follow {
	return store.Follow{ArtistID: artistID, UserID: userID}
}

func affiliationFromKeys(artistID, labelID int64) store.Affiliation {
	return store.Affiliation{ArtistID: artistID, LabelID: labelID}
}

func shareFromKeys(userID, playlistID int64) store.Share {
	return store.Share{UserID: userID, PlaylistID: playlistID}
}

func holdsFromKeys(songID, playlistID int64) store.Holds {
	return store.Holds{SongID: songID, PlaylistID: playlistID}
}
