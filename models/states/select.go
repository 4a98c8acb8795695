package states

type PageType int

const (
	PageType_Dashboard PageType = iota
	PageType_Resources
	PageType_Forums
	PageType_Plans
	PageType_Profile
)

var Pages = []PageType{
	PageType_Dashboard,
	PageType_Resources,
	PageType_Forums,
	PageType_Plans,
	PageType_Profile,
}

func (c PageType) Title() string {
	switch c {
	case PageType_Dashboard:
		return "Dashboard"
	case PageType_Resources:
		return "Resources"
	case PageType_Forums:
		return "Forums"
	case PageType_Plans:
		return "Study Plans"
	case PageType_Profile:
		return "Profile"
	}
	return ""
}

// Next cycles through Pages
func (c PageType) Next() PageType {
	return Pages[(int(c)+1)%len(Pages)]
}

type SelectedSource int

const (
	SelectedSource_Default SelectedSource = iota
	SelectedSource_Search
	SelectedSource_NavigateByKey
)
