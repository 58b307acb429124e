package conventions

import "testing"

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"apple", "Apple", true},
		{"Banana", "Banana", true},
		{"ORANGE", "Orange", true},
		{"myVIEW", "Myview", true},
		{"x", "X", true},
		{"élan", "Élan", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CapitalizeFirst(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CapitalizeFirst(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsActionMethodName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"actionIndex", true},
		{"actionView", true},
		{"actionX", true},
		{"action", false},
		{"actionindex", false},
		{"action_index", false},
		{"indexAction", false},
		{"beforeAction", false},
		{"", false},
	}
	for _, tt := range tests {
		got := IsActionMethodName(tt.name)
		if got != tt.want {
			t.Errorf("IsActionMethodName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestViewName(t *testing.T) {
	tests := []struct {
		action string
		want   string
		wantOK bool
	}{
		{"actionIndex", "index", true},
		{"actionList", "list", true},
		{"actionShowAll", "showall", true},
		{"actionindex", "", false},
		{"action", "", false},
		{"filters", "", false},
	}
	for _, tt := range tests {
		got, ok := ViewName(tt.action)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ViewName(%q) = %q, %v, want %q, %v", tt.action, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestActionMethodName(t *testing.T) {
	tests := []struct {
		view   string
		want   string
		wantOK bool
	}{
		{"index", "actionIndex", true},
		{"LIST", "actionList", true},
		{"showAll", "actionShowall", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ActionMethodName(tt.view)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ActionMethodName(%q) = %q, %v, want %q, %v", tt.view, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestViewFolderName(t *testing.T) {
	tests := []struct {
		controller string
		want       string
		wantOK     bool
	}{
		{"SiteController", "site", true},
		{"UserAdminController", "useradmin", true},
		{"Controller", "", true},
		{"SiteHelper", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ViewFolderName(tt.controller)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ViewFolderName(%q) = %q, %v, want %q, %v", tt.controller, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestControllerFileName(t *testing.T) {
	tests := []struct {
		folder string
		want   string
		wantOK bool
	}{
		{"site", "SiteController", true},
		{"useradmin", "UseradminController", true},
		{"POST", "PostController", true},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ControllerFileName(tt.folder)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ControllerFileName(%q) = %q, %v, want %q, %v", tt.folder, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToDepth(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"a", ""},
		{"a/", "/.."},
		{"a/b/", "/../.."},
		{"a/b/c/", "/../../.."},
		{"/a/", "/.."},
		{"a/b", "/.."},
	}
	for _, tt := range tests {
		got := ToDepth(tt.path)
		if got != tt.want {
			t.Errorf("ToDepth(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestControllerSubDirectory(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/app/protected/controllers/SiteController.php", "", true},
		{"/app/protected/controllers/admin/UserController.php", "admin/", true},
		{"/app/protected/controllers/admin/reports/DailyController.php", "admin/reports/", true},
		{"/app/protected/modules/forum/controllers/PostController.php", "", true},
		{"/app/controllers/x/controllers/y/AController.php", "y/", true},
		{"/controllers/SiteController.php", "", false},
		{"/app/protected/models/User.php", "", false},
	}
	for _, tt := range tests {
		got, ok := ControllerSubDirectory(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ControllerSubDirectory(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseViewPath(t *testing.T) {
	tests := []struct {
		path   string
		want   ViewLocation
		wantOK bool
	}{
		{"/protected/views/site/index.php", ViewLocation{FolderName: "site"}, true},
		{"/protected/views/admin/user/list.php", ViewLocation{SubDirectory: "admin/", FolderName: "user"}, true},
		{"/themes/classic/views/site/index.php", ViewLocation{FolderName: "site", Themed: true}, true},
		{"/protected/modules/forum/views/post/index.php", ViewLocation{FolderName: "post"}, true},
		{"/protected/views/index.php", ViewLocation{}, false},
		{"/protected/models/User.php", ViewLocation{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseViewPath(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseViewPath(%q) = %+v, %v, want %+v, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRelativePathToView(t *testing.T) {
	tests := []struct {
		subDir, theme, folder, view string
		want                        string
	}{
		{"", "", "site", "index", "../../views/site/index.php"},
		{"admin/", "", "user", "list", "../../../views/admin/user/list.php"},
		{"", "classic", "site", "index", "../../../themes/classic/views/site/index.php"},
		{"admin/", "classic", "user", "list", "../../../../themes/classic/views/admin/user/list.php"},
	}
	for _, tt := range tests {
		got := RelativePathToView(tt.subDir, tt.theme, tt.folder, tt.view)
		if got != tt.want {
			t.Errorf("RelativePathToView(%q, %q, %q, %q) = %q, want %q", tt.subDir, tt.theme, tt.folder, tt.view, got, tt.want)
		}
	}
}

func TestRelativePathToController(t *testing.T) {
	tests := []struct {
		loc  ViewLocation
		name string
		want string
	}{
		{ViewLocation{FolderName: "site"}, "SiteController", "../../../controllers/SiteController.php"},
		{ViewLocation{SubDirectory: "admin/", FolderName: "user"}, "UserController", "../../../../controllers/admin/UserController.php"},
		{ViewLocation{FolderName: "site", Themed: true}, "SiteController", "../../../../../protected/controllers/SiteController.php"},
	}
	for _, tt := range tests {
		got := RelativePathToController(tt.loc, tt.name)
		if got != tt.want {
			t.Errorf("RelativePathToController(%+v, %q) = %q, want %q", tt.loc, tt.name, got, tt.want)
		}
	}
}

func TestModuleSegment(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantDir  string
		wantOK   bool
	}{
		{"/modules/forum/views/post/index.php", "forum", "/modules/forum", true},
		{"/protected/modules/forum/controllers/PostController.php", "forum", "/protected/modules/forum", true},
		{"/protected/modules/admin/modules/audit/views/log/index.php", "audit", "/protected/modules/admin/modules/audit", true},
		{"/protected/modules/forum", "forum", "/protected/modules/forum", true},
		{"/protected/modules//x", "", "", false},
		{"/protected/views/site/index.php", "", "", false},
	}
	for _, tt := range tests {
		name, dir, ok := ModuleSegment(tt.path)
		if name != tt.wantName || dir != tt.wantDir || ok != tt.wantOK {
			t.Errorf("ModuleSegment(%q) = %q, %q, %v, want %q, %q, %v", tt.path, name, dir, ok, tt.wantName, tt.wantDir, tt.wantOK)
		}
	}
}

func TestIsInModules(t *testing.T) {
	if !IsInModules("/modules/forum/views/post/index.php") {
		t.Error("expected module path to be in modules")
	}
	if IsInModules("/protected/views/site/index.php") {
		t.Error("expected plain view not to be in modules")
	}
}
