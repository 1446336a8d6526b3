package grasp

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var negZero = math.Copysign(0, -1)

func TestPoseTransformText(t *testing.T) {
	tests := []struct {
		name string
		pose Pose
		want string
	}{
		{"identity", IdentityPose, "translate(0px,0px) rotate(0deg) scale(1)"},
		{"fractional", Pose{Translation: Vec2{12.5, -3}, Rotation: 45, Scale: 1.005},
			"translate(12.5px,-3px) rotate(45deg) scale(1.005)"},
		{"negative zero", Pose{Translation: Vec2{negZero, 0}, Rotation: negZero, Scale: 2},
			"translate(0px,0px) rotate(0deg) scale(2)"},
		{"no exponent", Pose{Scale: 1e-7}, "translate(0px,0px) rotate(0deg) scale(0.0000001)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pose.Transform(); got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
			if got := tt.pose.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTransform(t *testing.T) {
	tests := []struct {
		text string
		want Pose
	}{
		{"", IdentityPose},
		{"translate(12.5px,-3px) rotate(45deg) scale(1.005)",
			Pose{Translation: Vec2{12.5, -3}, Rotation: 45, Scale: 1.005}},
		{"scale(2)", Pose{Scale: 2}},
		{"ROTATE( 30deg )", Pose{Rotation: 30, Scale: 1}},
		{"translate(1px, 2px) skewX(10deg)", Pose{Translation: Vec2{1, 2}, Scale: 1}},
		{"scale(1e-3)", Pose{Scale: 0.001}},
	}
	for _, tt := range tests {
		got, err := ParseTransform(tt.text)
		if err != nil {
			t.Errorf("ParseTransform(%q): %v", tt.text, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseTransform(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestParseTransformRoundTrip(t *testing.T) {
	p := Pose{Translation: Vec2{-17.25, 300}, Rotation: -12.5, Scale: 0.75}
	got, err := ParseTransform(p.Transform())
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestParseTransformErrors(t *testing.T) {
	for _, text := range []string{
		"translate(5px)",
		"rotate(abc)",
		"scale(px)",
	} {
		if _, err := ParseTransform(text); err == nil {
			t.Errorf("ParseTransform(%q) succeeded, want error", text)
		}
	}
}

func TestStyleTarget(t *testing.T) {
	st := &StyleTarget{Style: "translate(10px,20px) rotate(0deg) scale(1.5)"}
	want := Pose{Translation: Vec2{10, 20}, Scale: 1.5}
	if got := st.InitialPose(); got != want {
		t.Errorf("InitialPose = %v, want %v", got, want)
	}

	p := Pose{Translation: Vec2{1, 2}, Rotation: 3, Scale: 4}
	st.ApplyTransform(p.Transform(), p)
	if st.Style != "translate(1px,2px) rotate(3deg) scale(4)" {
		t.Errorf("Style = %q", st.Style)
	}
}

func TestStyleTargetInvalidStyle(t *testing.T) {
	st := &StyleTarget{Style: "rotate(oops)"}
	if got := st.InitialPose(); got != IdentityPose {
		t.Errorf("InitialPose = %v, want identity", got)
	}
}
