package visibility_test

import (
	"testing"

	"go-hrms/internal/shared/visibility"

	"github.com/stretchr/testify/assert"
)

// 1 and 3 report to 2; 4 reports to 6.
var managers = map[string]string{"1": "2", "3": "2", "4": "6"}

func managerOf(id string) string { return managers[id] }

func TestCanSee(t *testing.T) {
	tests := []struct {
		name   string
		viewer visibility.Viewer
		owner  string
		want   bool
	}{
		{"admin sees anyone", visibility.Viewer{ID: "9", Role: "admin"}, "1", true},
		{"finance sees anyone", visibility.Viewer{ID: "5", Role: "finance"}, "4", true},
		{"super admin sees anyone", visibility.Viewer{ID: "6", Role: "super_admin"}, "1", true},
		{"manager sees report", visibility.Viewer{ID: "2", Role: "manager"}, "3", true},
		{"manager sees self", visibility.Viewer{ID: "2", Role: "manager"}, "2", true},
		{"manager does not see others", visibility.Viewer{ID: "2", Role: "manager"}, "4", false},
		{"employee sees self", visibility.Viewer{ID: "1", Role: "employee"}, "1", true},
		{"employee does not see peer", visibility.Viewer{ID: "1", Role: "employee"}, "3", false},
		{"anonymous sees nothing", visibility.Viewer{Role: "employee"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, visibility.CanSee(tt.viewer, tt.owner, managerOf))
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	owners := []string{"3", "4", "2", "1"}

	got := visibility.Filter(owners, visibility.Viewer{ID: "2", Role: "manager"},
		func(s string) string { return s }, managerOf)

	assert.Equal(t, []string{"3", "2", "1"}, got)
}
