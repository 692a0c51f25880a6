package route

// Road is an undirected road between two cities with its length in km.
type Road struct {
	From, To string
	Km       float64
}

// roads is the classic Romania road map. Insertion order fixes successor
// order and therefore tie-breaking, so it must not be sorted.
var roads = []Road{
	{"Arad", "Zerind", 75},
	{"Arad", "Sibiu", 140},
	{"Arad", "Timisoara", 118},
	{"Zerind", "Oradea", 71},
	{"Oradea", "Sibiu", 151},
	{"Timisoara", "Lugoj", 111},
	{"Lugoj", "Mehadia", 70},
	{"Mehadia", "Drobeta", 75},
	{"Drobeta", "Craiova", 120},
	{"Craiova", "Rimnicu Vilcea", 146},
	{"Craiova", "Pitesti", 138},
	{"Sibiu", "Fagaras", 99},
	{"Sibiu", "Rimnicu Vilcea", 80},
	{"Rimnicu Vilcea", "Pitesti", 97},
	{"Fagaras", "Bucharest", 211},
	{"Pitesti", "Bucharest", 101},
	{"Bucharest", "Giurgiu", 90},
	{"Bucharest", "Urziceni", 85},
	{"Urziceni", "Hirsova", 98},
	{"Hirsova", "Eforie", 86},
	{"Urziceni", "Vaslui", 142},
	{"Vaslui", "Iasi", 92},
	{"Iasi", "Neamt", 87},
}

// locations are planar map coordinates in km. The Euclidean distance between
// any two road endpoints never exceeds the road length, so SLD is admissible
// and consistent on this map.
var locations = map[string]Point{
	"Arad":           {91, 492},
	"Bucharest":      {400, 327},
	"Craiova":        {253, 288},
	"Drobeta":        {165, 299},
	"Eforie":         {562, 293},
	"Fagaras":        {305, 449},
	"Giurgiu":        {375, 270},
	"Hirsova":        {534, 350},
	"Iasi":           {473, 506},
	"Lugoj":          {165, 379},
	"Mehadia":        {168, 339},
	"Neamt":          {406, 537},
	"Oradea":         {131, 571},
	"Pitesti":        {320, 368},
	"Rimnicu Vilcea": {233, 410},
	"Sibiu":          {207, 457},
	"Timisoara":      {94, 410},
	"Urziceni":       {456, 350},
	"Vaslui":         {509, 444},
	"Zerind":         {108, 531},
}

// aliases maps alternative spellings to canonical city names.
var aliases = map[string]string{
	"Rimnicu":        "Rimnicu Vilcea",
	"Râmnicu Vâlcea": "Rimnicu Vilcea",
	"Timișoara":      "Timisoara",
	"Timisoara*":     "Timisoara",
	"Bucarest":       "Bucharest",
}
