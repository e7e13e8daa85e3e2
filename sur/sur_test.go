// Public domain.

package sur_test

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/soniakeys/aperture/sur"
)

const surFixture = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<SEGMENT_UPDATE_REQUEST creator="wasops" date="2026-08-29" time="12:00:00" version="0.0.1" operational="false" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="../../setup_files/schema/segment_update_request.xsd">
    <CONFIGURATION_NAME>DA_12</CONFIGURATION_NAME>
    <CORRECTION_ID>R2017a</CORRECTION_ID>
    <GROUP id="1">
        <UPDATE id="1" type="pose" seg_id="A1-1" absolute="false" coord="global" stage_type="recenter_fine">
            <X_TRANS  units="meters">1.000000E-07</X_TRANS>
            <PISTON  units="meters">-2.500000E-08</PISTON>
            <X_TILT  units="radians">3.100000E-09</X_TILT>
        </UPDATE>
        <UPDATE id="2" type="pose" seg_id="B3-7" absolute="true" coord="local" stage_type="none">
            <Y_TRANS  units="meters">4.000000E-08</Y_TRANS>
            <CLOCK  units="radians">-1.200000E-09</CLOCK>
        </UPDATE>
    </GROUP>
    <GROUP id="2">
        <UPDATE id="3" type="pose" seg_id="C2-5" absolute="false" coord="global" stage_type="fine_only">
            <PISTON  units="meters">6.000000E-09</PISTON>
        </UPDATE>
    </GROUP>
</SEGMENT_UPDATE_REQUEST>`

func read(t *testing.T) *sur.SUR {
	t.Helper()
	s, err := sur.Read(strings.NewReader(surFixture))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRead(t *testing.T) {
	s := read(t)
	if s.Creator != "wasops" || s.Date != "2026-08-29" ||
		s.Time != "12:00:00" || s.Version != "0.0.1" ||
		s.Operational != "false" {
		t.Fatal("root attributes not parsed")
	}
	if s.ConfigurationName != "DA_12" || s.CorrectionId != "R2017a" {
		t.Fatal("metadata elements not parsed")
	}
	if len(s.Groups) != 2 || len(s.Groups[0]) != 2 || len(s.Groups[1]) != 1 {
		t.Fatal("group structure not preserved")
	}
	u := s.Groups[0][0]
	if u.Id != 1 || u.Segment != "A1" || u.Absolute || u.Coord != "global" ||
		u.StageType != "recenter_fine" {
		t.Fatalf("update fields: %+v", u)
	}
	if len(u.Moves) != 3 || len(u.Units) != 3 {
		t.Fatal("moves/units not parallel")
	}
	if math.Abs(u.Moves["X_TRANS"]-1e-7) > 1e-20 {
		t.Fatal("move value:", u.Moves["X_TRANS"])
	}
	if u.Units["PISTON"] != "meters" || u.Units["X_TILT"] != "radians" {
		t.Fatal("units:", u.Units)
	}
	if !s.Groups[0][1].Absolute {
		t.Fatal("absolute flag not parsed")
	}
}

func TestReadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sur_ok_rel_gl.xml")
	if err := os.WriteFile(fn, []byte(surFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := sur.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if s.Filename != fn {
		t.Fatal("file name not recorded")
	}
}

func TestUpdateType(t *testing.T) {
	doc := strings.Replace(surFixture, `id="1" type="pose"`,
		`id="1" type="translate"`, 1)
	_, err := sur.Read(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected error for update type translate")
	}
	if _, ok := err.(sur.TypeError); !ok {
		t.Fatalf("expected TypeError, got %T: %v", err, err)
	}
}

func TestCoordAccessors(t *testing.T) {
	s := read(t)
	global := s.Groups[0][0] // coord="global"
	local := s.Groups[0][1]  // coord="local"

	if m, err := global.GlobalMoves(); err != nil || len(m) != 3 {
		t.Fatal("GlobalMoves on global update:", m, err)
	}
	if _, err := global.LocalMoves(); err != sur.ErrCoord {
		t.Fatal("expected ErrCoord converting global to local, got", err)
	}
	if m, err := local.LocalMoves(); err != nil || len(m) != 2 {
		t.Fatal("LocalMoves on local update:", m, err)
	}
	if _, err := local.GlobalMoves(); err != sur.ErrCoord {
		t.Fatal("expected ErrCoord converting local to global, got", err)
	}
}

// Parsing generated text must reproduce the document structure.
func TestXMLTextRoundTrip(t *testing.T) {
	s := read(t)
	s2, err := sur.Read(strings.NewReader(s.XMLText()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Groups, s2.Groups) {
		t.Fatal("groups differ after regeneration")
	}
	if s.Creator != s2.Creator || s.Date != s2.Date || s.Time != s2.Time ||
		s.Version != s2.Version || s.Operational != s2.Operational ||
		s.ConfigurationName != s2.ConfigurationName ||
		s.CorrectionId != s2.CorrectionId {
		t.Fatal("metadata differs after regeneration")
	}
	// and regenerating again is byte identical
	if s.XMLText() != s2.XMLText() {
		t.Fatal("regenerated text unstable")
	}
}

func TestSummaries(t *testing.T) {
	s := read(t)
	u := s.Groups[0][0]
	short := u.ShortString()
	for _, want := range []string{"Update 1", "A1", "relative", "global", "PISTON="} {
		if !strings.Contains(short, want) {
			t.Fatalf("ShortString %q missing %q", short, want)
		}
	}
	// summary axis order puts PISTON before X_TRANS
	if strings.Index(short, "PISTON") > strings.Index(short, "X_TRANS") {
		t.Fatal("summary axis order wrong:", short)
	}
	full := s.String()
	if !strings.Contains(full, "Group 1") || !strings.Contains(full, "Group 2") {
		t.Fatal("document summary missing groups:", full)
	}
}
