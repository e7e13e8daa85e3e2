// Public domain.

package sur

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soniakeys/aperture/internal/xmltree"
)

// Axes lists the rigid body move axes of a segment update in
// serialization order.  SUR consumers expect update children in
// exactly this order.
var Axes = []string{"X_TRANS", "Y_TRANS", "PISTON", "X_TILT", "Y_TILT", "CLOCK"}

// summaryAxes is the axis order used for one line summaries.
var summaryAxes = []string{"PISTON", "X_TRANS", "Y_TRANS", "CLOCK", "X_TILT", "Y_TILT"}

// An Update is one commanded rigid body move of one mirror segment.
//
// Moves and Units are parallel maps over the same axis keys: the move
// value and its unit string.  Updates are immutable once parsed.
type Update struct {
	Id        int
	Type      string // only "pose" is supported
	Segment   string // 2 character segment id
	Absolute  bool   // else relative
	Coord     string // "local" or "global"
	StageType string // free form, eg "recenter_fine", "fine_only", "none"
	Moves     map[string]float64
	Units     map[string]string
}

// TypeError reports an update type other than "pose" at construction.
type TypeError string

func (e TypeError) Error() string {
	return `sur: unsupported update type "` + string(e) + `"`
}

// ErrCoord is returned when update moves are requested in the
// coordinate system the update was not commanded in.  The conversion
// is not implemented; failing loudly beats silently reporting moves in
// the wrong frame.
var ErrCoord = errors.New("sur: local/global move conversion not implemented")

// parseUpdate converts one UPDATE node.  Attributes map directly to
// fields; each child element is a move axis carrying a units attribute
// and a numeric value.
func parseUpdate(e *xmltree.Element) (*Update, error) {
	if typ := e.Attr["type"]; typ != "pose" {
		return nil, TypeError(typ)
	}
	id, err := strconv.Atoi(e.Attr["id"])
	if err != nil {
		return nil, fmt.Errorf("sur: invalid update id (%s)", e.Attr["id"])
	}
	seg := e.Attr["seg_id"]
	if len(seg) > 2 {
		seg = seg[:2]
	}
	u := &Update{
		Id:        id,
		Type:      "pose",
		Segment:   seg,
		Absolute:  e.Attr["absolute"] == "true",
		Coord:     e.Attr["coord"],
		StageType: e.Attr["stage_type"],
		Moves:     make(map[string]float64),
		Units:     make(map[string]string),
	}
	for i := range e.Children {
		c := &e.Children[i]
		v, err := strconv.ParseFloat(c.Text, 64)
		if err != nil {
			return nil, fmt.Errorf("sur: update %d: invalid %s value (%s)",
				id, c.Tag, c.Text)
		}
		u.Moves[c.Tag] = v
		u.Units[c.Tag] = c.Attr["units"]
	}
	return u, nil
}

// GlobalMoves returns the moves map when the update is commanded in
// global coordinates, and ErrCoord otherwise.
func (u *Update) GlobalMoves() (map[string]float64, error) {
	if u.Coord != "global" {
		return nil, ErrCoord
	}
	return u.Moves, nil
}

// LocalMoves returns the moves map when the update is commanded in
// local coordinates, and ErrCoord otherwise.
func (u *Update) LocalMoves() (map[string]float64, error) {
	if u.Coord != "local" {
		return nil, ErrCoord
	}
	return u.Moves, nil
}

func (u *Update) relAbs() string {
	if u.Absolute {
		return "absolute"
	}
	return "relative"
}

func (u *Update) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Update %d, %s, %s: {", u.Id, u.relAbs(), u.Coord)
	sep := ""
	for _, ax := range summaryAxes {
		if v, ok := u.Moves[ax]; ok {
			fmt.Fprintf(&b, "%s%s: %g", sep, ax, v)
			sep = ", "
		}
	}
	b.WriteString("}")
	return b.String()
}

// ShortString is a one line summary with segment id and move values.
func (u *Update) ShortString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Update %d: %s, %s, %s {", u.Id, u.Segment, u.relAbs(), u.Coord)
	sep := ""
	for _, ax := range summaryAxes {
		if v, ok := u.Moves[ax]; ok {
			fmt.Fprintf(&b, "%s%s=%.3g", sep, ax, v)
			sep = ", "
		}
	}
	b.WriteString("}")
	return b.String()
}

// xmlText appends the XML representation of the update.  Axis children
// emit in the fixed Axes order with values in scientific notation.
// The format must stay exact for interchange.
func (u *Update) xmlText(b *strings.Builder) {
	fmt.Fprintf(b,
		"        <UPDATE id=\"%d\" type=\"%s\" seg_id=\"%s\" absolute=\"%t\" coord=\"%s\" stage_type=\"%s\">\n",
		u.Id, u.Type, u.Segment, u.Absolute, u.Coord, u.StageType)
	for _, ax := range Axes {
		if v, ok := u.Moves[ax]; ok {
			fmt.Fprintf(b, "            <%s  units=\"%s\">%E</%s>\n",
				ax, u.Units[ax], v, ax)
		}
	}
	b.WriteString("        </UPDATE>\n")
}
