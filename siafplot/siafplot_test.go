// Public domain.

package siafplot_test

import (
	"strings"
	"testing"

	"gonum.org/v1/plot"

	"github.com/soniakeys/aperture/siaf"
	"github.com/soniakeys/aperture/siafplot"
)

const fixture = `<S><SiafEntry>
<AperName>FGS1</AperName>
<XDetRef>1024.0</XDetRef><YDetRef>1024.0</YDetRef>
<XSciRef>1024.0</XSciRef><YSciRef>1024.0</YSciRef>
<DetSciYAngle>0.0</DetSciYAngle><DetSciParity>1</DetSciParity>
<V2Ref>200.0</V2Ref><V3Ref>-700.0</V3Ref>
<V3IdlYAng>0.0</V3IdlYAng><VIdlParity>1</VIdlParity>
<XIdlVert1>-60.0</XIdlVert1><XIdlVert2>60.0</XIdlVert2>
<XIdlVert3>60.0</XIdlVert3><XIdlVert4>-60.0</XIdlVert4>
<YIdlVert1>-60.0</YIdlVert1><YIdlVert2>-60.0</YIdlVert2>
<YIdlVert3>60.0</YIdlVert3><YIdlVert4>60.0</YIdlVert4>
<Sci2IdlDeg>0</Sci2IdlDeg>
</SiafEntry></S>`

func TestAll(t *testing.T) {
	s, err := siaf.Read(strings.NewReader(fixture), "FGS")
	if err != nil {
		t.Fatal(err)
	}
	p := plot.New()
	if err := siafplot.All(p, s, siaf.Tel, nil); err != nil {
		t.Fatal(err)
	}
	if p.X.Label.Text != "V2 [arcsec]" {
		t.Fatal("Tel frame axis label:", p.X.Label.Text)
	}
	if _, ok := p.X.Scale.(plot.InvertedScale); !ok {
		t.Fatal("Tel frame X axis not inverted")
	}

	p = plot.New()
	if err := siafplot.All(p, s, siaf.Det, []string{"FGS1", "NOSUCH"}); err != nil {
		t.Fatal(err)
	}
	if p.Title.Text != "Det frame" {
		t.Fatal("title:", p.Title.Text)
	}

	// an undefined frame propagates the conversion error
	p = plot.New()
	if err := siafplot.All(p, s, siaf.Frame(9), nil); err == nil {
		t.Fatal("expected error for undefined frame")
	}
}
