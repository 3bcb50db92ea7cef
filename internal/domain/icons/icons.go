package icons

import (
	"fmt"
	"sort"

	"github.com/facgure/launchpad/internal/shared/types"
)

// Known symbolic icon names. The set mirrors the solid-style glyphs the
// dashboard shell ships with.
const (
	Home        = "faHome"
	FileLines   = "faFileLines"
	User        = "faUser"
	Bell        = "faBell"
	ChartColumn = "faChartColumn"
	Calendar    = "faCalendar"
	FileExcel   = "faFileExcel"
	CommentDots = "faCommentDots"
	Envelope    = "faEnvelope"
	Gear        = "faGear"
	Bolt        = "faBolt"
	Database    = "faDatabase"
	FileAlt     = "faFileAlt"
	Briefcase   = "faBriefcase"
	ChartPie    = "faChartPie"
	Users       = "faUsers"
	CreditCard  = "faCreditCard"
)

// registry maps symbolic names to their renderable definitions. CSS class
// and codepoint follow the Font Awesome solid set.
var registry = map[string]types.IconDef{
	Home:        {Name: Home, Style: "solid", CSS: "fa-house", Unicode: "f015"},
	FileLines:   {Name: FileLines, Style: "solid", CSS: "fa-file-lines", Unicode: "f15c"},
	User:        {Name: User, Style: "solid", CSS: "fa-user", Unicode: "f007"},
	Bell:        {Name: Bell, Style: "solid", CSS: "fa-bell", Unicode: "f0f3"},
	ChartColumn: {Name: ChartColumn, Style: "solid", CSS: "fa-chart-column", Unicode: "e0e3"},
	Calendar:    {Name: Calendar, Style: "solid", CSS: "fa-calendar", Unicode: "f133"},
	FileExcel:   {Name: FileExcel, Style: "solid", CSS: "fa-file-excel", Unicode: "f1c3"},
	CommentDots: {Name: CommentDots, Style: "solid", CSS: "fa-comment-dots", Unicode: "f4ad"},
	Envelope:    {Name: Envelope, Style: "solid", CSS: "fa-envelope", Unicode: "f0e0"},
	Gear:        {Name: Gear, Style: "solid", CSS: "fa-gear", Unicode: "f013"},
	Bolt:        {Name: Bolt, Style: "solid", CSS: "fa-bolt", Unicode: "f0e7"},
	Database:    {Name: Database, Style: "solid", CSS: "fa-database", Unicode: "f1c0"},
	FileAlt:     {Name: FileAlt, Style: "solid", CSS: "fa-file-alt", Unicode: "f15c"},
	Briefcase:   {Name: Briefcase, Style: "solid", CSS: "fa-briefcase", Unicode: "f0b1"},
	ChartPie:    {Name: ChartPie, Style: "solid", CSS: "fa-chart-pie", Unicode: "f200"},
	Users:       {Name: Users, Style: "solid", CSS: "fa-users", Unicode: "f0c0"},
	CreditCard:  {Name: CreditCard, Style: "solid", CSS: "fa-credit-card", Unicode: "f09d"},
}

// Resolve maps a manifest's symbolic icon name to its renderable
// definition. Unknown names are an error; callers should treat this as a
// manifest defect, not substitute a placeholder.
func Resolve(name string) (types.IconDef, error) {
	def, ok := registry[name]
	if !ok {
		return types.IconDef{}, fmt.Errorf("unknown icon %q", name)
	}
	return def, nil
}

// Known reports whether name is in the supported set
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns all supported symbolic names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
