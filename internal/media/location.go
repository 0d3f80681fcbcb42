package media

import (
	"fmt"
	"strings"
)

type LocationKind int

const (
	LocationNone LocationKind = iota
	LocationURL
	// LocationTelegramFile holds a Bot API file_id.
	LocationTelegramFile
	LocationGeo
)

// Location says where the bytes of a media handle come from.
type Location struct {
	Kind  LocationKind
	Value string
	Lat   float64
	Lon   float64
}

func URLLocation(rawURL string) Location {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Location{}
	}
	return Location{Kind: LocationURL, Value: rawURL}
}

func FileLocation(fileID string) Location {
	if fileID == "" {
		return Location{}
	}
	return Location{Kind: LocationTelegramFile, Value: fileID}
}

func GeoLocation(lat, lon float64) Location {
	return Location{Kind: LocationGeo, Lat: lat, Lon: lon}
}

func (l Location) IsZero() bool {
	return l.Kind == LocationNone
}

// Key identifies the location across the process; it never contains secrets.
func (l Location) Key() string {
	switch l.Kind {
	case LocationURL:
		return "url:" + l.Value
	case LocationTelegramFile:
		return "tg:" + l.Value
	case LocationGeo:
		return fmt.Sprintf("geo:%.6f,%.6f", l.Lat, l.Lon)
	default:
		return ""
	}
}
