package model

import (
	"database/sql/driver"
	"encoding/hex"

	"geoalert/internal/domain/constants"
	"geoalert/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// Point maps a PostGIS geometry(Point, 4326) column.
type Point struct {
	orb.Point
}

// GormDataType is used by migrations and gorm/gen.
func (Point) GormDataType() string {
	return "geometry(Point,4326)"
}

// Value encodes the point as hex EWKB, which PostGIS accepts as text input.
func (p Point) Value() (driver.Value, error) {
	return ewkbHex(p.Point)
}

// Scan decodes hex or binary EWKB.
func (p *Point) Scan(src any) error {
	return scanEWKB(src, &p.Point)
}

// Polygon maps a PostGIS geometry(Polygon, 4326) column.
type Polygon struct {
	orb.Polygon
}

// GormDataType is used by migrations and gorm/gen.
func (Polygon) GormDataType() string {
	return "geometry(Polygon,4326)"
}

// Value encodes the polygon as hex EWKB.
func (p Polygon) Value() (driver.Value, error) {
	if p.Polygon == nil {
		return nil, nil
	}

	return ewkbHex(p.Polygon)
}

// Scan decodes hex or binary EWKB.
func (p *Polygon) Scan(src any) error {
	return scanEWKB(src, &p.Polygon)
}

func ewkbHex(g orb.Geometry) (driver.Value, error) {
	encoded, err := ewkb.MarshalToHex(g, constants.SRID)
	if err != nil {
		return nil, errors.Wrap(err, "encode ewkb")
	}

	return encoded, nil
}

func scanEWKB(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		src = []byte(v)
	case []byte:
	default:
		return errors.Errorf("unsupported geometry source type %T", src)
	}

	// Text results arrive hex encoded. Binary EWKB starts with a 0x00 or 0x01 byte order mark.
	if raw := src.([]byte); len(raw) > 0 && raw[0] == '0' {
		decoded, err := hex.DecodeString(string(raw))
		if err != nil {
			return errors.Wrap(err, "decode ewkb hex")
		}
		src = decoded
	}

	if err := ewkb.Scanner(dst).Scan(src); err != nil {
		return errors.Wrap(err, "decode ewkb")
	}

	return nil
}
