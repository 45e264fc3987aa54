// Package catalog holds the static furniture catalogue and the default room
// layouts every fresh installation starts with.
package catalog

import "roomdesigner/internal/model"

// AdminOwnerID owns the seeded layouts.
const AdminOwnerID = "1"

func thumb(photo string) string {
	return "https://images.pexels.com/photos/" + photo + "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"
}

var categories = []model.Category{
	{
		ID:   "chairs",
		Name: "Chairs",
		Items: []model.TemplateItem{
			{ID: "chair-1", Name: "Modern Dining Chair", Type: model.TypeChair, Thumbnail: thumb("1148955/pexels-photo-1148955.jpeg"), DefaultColor: "#8B4513", DefaultScale: model.V(0.5, 0.5, 0.5)},
			{ID: "chair-2", Name: "Lounge Chair", Type: model.TypeChair, Thumbnail: thumb("2082090/pexels-photo-2082090.jpeg"), DefaultColor: "#A0522D", DefaultScale: model.V(0.6, 0.6, 0.6)},
			{ID: "chair-3", Name: "Office Chair", Type: model.TypeChair, Thumbnail: thumb("1957477/pexels-photo-1957477.jpeg"), DefaultColor: "#000000", DefaultScale: model.V(0.5, 0.5, 0.5)},
		},
	},
	{
		ID:   "tables",
		Name: "Tables",
		Items: []model.TemplateItem{
			{ID: "table-1", Name: "Dining Table", Type: model.TypeTable, Thumbnail: thumb("1395967/pexels-photo-1395967.jpeg"), DefaultColor: "#8B4513", DefaultScale: model.V(1.2, 0.8, 1.2)},
			{ID: "table-2", Name: "Coffee Table", Type: model.TypeCoffeeTable, Thumbnail: thumb("276583/pexels-photo-276583.jpeg"), DefaultColor: "#D2B48C", DefaultScale: model.V(1.0, 0.4, 0.6)},
			{ID: "table-3", Name: "Office Desk", Type: model.TypeDesk, Thumbnail: thumb("667838/pexels-photo-667838.jpeg"), DefaultColor: "#5F4F39", DefaultScale: model.V(1.5, 0.75, 0.8)},
		},
	},
	{
		ID:   "sofas",
		Name: "Sofas",
		Items: []model.TemplateItem{
			{ID: "sofa-1", Name: "Living Room Sofa", Type: model.TypeSofa, Thumbnail: thumb("1866149/pexels-photo-1866149.jpeg"), DefaultColor: "#808080", DefaultScale: model.V(2.0, 0.8, 0.9)},
			{ID: "sofa-2", Name: "Sectional Sofa", Type: model.TypeSofa, Thumbnail: thumb("276583/pexels-photo-276583.jpeg"), DefaultColor: "#704214", DefaultScale: model.V(2.5, 0.8, 2.5)},
		},
	},
	{
		ID:   "storage",
		Name: "Storage",
		Items: []model.TemplateItem{
			{ID: "bookshelf-1", Name: "Tall Bookshelf", Type: model.TypeBookshelf, Thumbnail: thumb("1090638/pexels-photo-1090638.jpeg"), DefaultColor: "#8B4513", DefaultScale: model.V(1.0, 2.0, 0.4)},
			{ID: "cabinet-1", Name: "Storage Cabinet", Type: model.TypeCabinet, Thumbnail: thumb("2121121/pexels-photo-2121121.jpeg"), DefaultColor: "#A0522D", DefaultScale: model.V(1.2, 1.2, 0.5)},
		},
	},
}

// Categories returns a copy of the catalogue in display order.
func Categories() []model.Category {
	out := make([]model.Category, len(categories))
	for i, c := range categories {
		out[i] = c
		out[i].Items = append([]model.TemplateItem(nil), c.Items...)
	}
	return out
}

// Template looks up a catalogue entry by id.
func Template(id string) (model.TemplateItem, bool) {
	for _, c := range categories {
		for _, it := range c.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return model.TemplateItem{}, false
}

// Layout is a named starting room.
type Layout struct {
	Name string
	Room model.RoomSettings
}

var layouts = []Layout{
	{"Living Room", model.RoomSettings{Width: 15, Length: 20, Height: 9, WallColor: "#F5F5F5", FloorColor: "#D7CCC8"}},
	{"Master Bedroom", model.RoomSettings{Width: 14, Length: 16, Height: 9, WallColor: "#E6E6FA", FloorColor: "#A89C94"}},
	{"Kitchen", model.RoomSettings{Width: 12, Length: 15, Height: 9, WallColor: "#F0FFF0", FloorColor: "#BCAAA4"}},
	{"Dining Room", model.RoomSettings{Width: 12, Length: 14, Height: 9, WallColor: "#FFF0F5", FloorColor: "#8D6E63"}},
	{"Home Office", model.RoomSettings{Width: 10, Length: 12, Height: 9, WallColor: "#E0F7FA", FloorColor: "#A1887F"}},
	{"Studio Apartment", model.RoomSettings{Width: 18, Length: 24, Height: 9, WallColor: "#FFF8E1", FloorColor: "#EFEBE9"}},
	{"Empty Room", model.RoomSettings{Width: 15, Length: 15, Height: 9, WallColor: "#FFFFFF", FloorColor: "#EEEEEE"}},
}

// DefaultLayouts returns the seven seed layouts.
func DefaultLayouts() []Layout {
	return append([]Layout(nil), layouts...)
}
