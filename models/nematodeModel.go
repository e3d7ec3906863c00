package models

// Classification is the taxonomic placement of a species.
type Classification struct {
	Phylum string `json:"phylum"`
	Class  string `json:"class"`
	Order  string `json:"order"`
	Family string `json:"family"`
}

// NematodeSpecies is an entry of the static educational reference.
type NematodeSpecies struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ScientificName string         `json:"scientificName"`
	Classification Classification `json:"classification"`
	Habitat        string         `json:"habitat"`
	Size           string         `json:"size"`
	Lifespan       string         `json:"lifespan"`
	Diet           string         `json:"diet"`
	Reproduction   string         `json:"reproduction"`
	EcologicalRole string         `json:"ecologicalRole"`
	PlantImpact    string         `json:"plantImpact"`
	ControlMethods []string       `json:"controlMethods"`
	Image          string         `json:"image"`
	Description    string         `json:"description"`
}

// NematodeSpeciesList is the fixed reference content.
var NematodeSpeciesList = []NematodeSpecies{
	{
		ID:             "1",
		Name:           "Root-knot Nematode",
		ScientificName: "Meloidogyne incognita",
		Classification: Classification{Phylum: "Nematoda", Class: "Chromadorea", Order: "Rhabditida", Family: "Meloidogynidae"},
		Habitat:        "Soil, plant roots",
		Size:           "0.4-0.6 mm",
		Lifespan:       "25-30 days",
		Diet:           "Plant root cells",
		Reproduction:   "Parthenogenetic",
		EcologicalRole: "Plant parasite, soil ecosystem component",
		PlantImpact:    "Causes root galls, stunted growth, reduced yield",
		ControlMethods: []string{"Crop rotation", "Resistant varieties", "Biological control", "Soil solarization"},
		Image:          "/placeholder.svg?height=200&width=300&text=Root-knot+Nematode",
		Description:    "One of the most economically important plant-parasitic nematodes worldwide, causing significant damage to agricultural crops.",
	},
	{
		ID:             "2",
		Name:           "Pinewood Nematode",
		ScientificName: "Bursaphelenchus xylophilus",
		Classification: Classification{Phylum: "Nematoda", Class: "Chromadorea", Order: "Aphelenchida", Family: "Aphelenchoididae"},
		Habitat:        "Pine trees, wood",
		Size:           "0.6-1.0 mm",
		Lifespan:       "30-40 days",
		Diet:           "Fungal hyphae, plant cells",
		Reproduction:   "Sexual reproduction",
		EcologicalRole: "Forest pathogen, causes pine wilt disease",
		PlantImpact:    "Causes pine wilt disease, tree mortality",
		ControlMethods: []string{"Vector control", "Quarantine measures", "Tree removal", "Chemical treatment"},
		Image:          "/placeholder.svg?height=200&width=300&text=Pinewood+Nematode",
		Description:    "A devastating forest pathogen that causes pine wilt disease, leading to massive tree mortality in affected areas.",
	},
	{
		ID:             "3",
		Name:           "Soybean Cyst Nematode",
		ScientificName: "Heterodera glycines",
		Classification: Classification{Phylum: "Nematoda", Class: "Chromadorea", Order: "Tylenchida", Family: "Heteroderidae"},
		Habitat:        "Agricultural soils, soybean roots",
		Size:           "0.5-0.8 mm",
		Lifespan:       "30-35 days",
		Diet:           "Soybean root cells",
		Reproduction:   "Sexual reproduction",
		EcologicalRole: "Agricultural pest, soil inhabitant",
		PlantImpact:    "Reduces soybean yield, causes chlorosis and stunting",
		ControlMethods: []string{"Resistant cultivars", "Crop rotation", "Nematicides", "Biological control"},
		Image:          "/placeholder.svg?height=200&width=300&text=Soybean+Cyst+Nematode",
		Description:    "The most damaging pathogen of soybean in the United States, causing billions of dollars in yield losses annually.",
	},
	{
		ID:             "4",
		Name:           "Free-living Nematode",
		ScientificName: "Caenorhabditis elegans",
		Classification: Classification{Phylum: "Nematoda", Class: "Chromadorea", Order: "Rhabditida", Family: "Rhabditidae"},
		Habitat:        "Soil, compost, rotting vegetation",
		Size:           "1.0-1.5 mm",
		Lifespan:       "2-3 weeks",
		Diet:           "Bacteria, organic matter",
		Reproduction:   "Hermaphroditic",
		EcologicalRole: "Decomposer, model organism for research",
		PlantImpact:    "Beneficial - helps decompose organic matter",
		ControlMethods: []string{"Not applicable - beneficial species"},
		Image:          "/placeholder.svg?height=200&width=300&text=C.+elegans",
		Description:    "A model organism extensively used in biological research, particularly in genetics, developmental biology, and neuroscience.",
	},
}
