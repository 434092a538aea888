package domain

type TempleTimings struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
}

type TempleAccess struct {
	Airport string `json:"airport"`
	Railway string `json:"railway"`
	Road    string `json:"road"`
}

// Temple - статический справочник храмов для витрины,
// ядром не изменяется
type Temple struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Location         string        `json:"location"`
	Description      string        `json:"description"`
	Significance     []string      `json:"significance"`
	Timings          TempleTimings `json:"timings"`
	PeakCrowd        []string      `json:"peakCrowd"`
	BiggestHighlight string        `json:"biggestHighlight"`
	NearestAccess    TempleAccess  `json:"nearestAccess"`
	LocationURL      string        `json:"locationUrl"`
}

var Temples = []Temple{
	{
		ID:          1,
		Name:        "Somnath Temple",
		Location:    "Prabhas Patan, Gujarat",
		Description: "The first among the twelve Jyotirlinga shrines of Lord Shiva, rebuilt several times through history on the shore of the Arabian Sea.",
		Significance: []string{
			"First of the twelve Jyotirlingas",
			"Mentioned in the Rig Veda and Shiv Purana",
		},
		Timings:          TempleTimings{Weekdays: "06:00 - 22:00", Weekends: "06:00 - 22:00"},
		PeakCrowd:        []string{"Maha Shivaratri", "Kartik Purnima"},
		BiggestHighlight: "Evening aarti by the sea",
		NearestAccess: TempleAccess{
			Airport: "Diu Airport (85 km)",
			Railway: "Veraval Junction (7 km)",
			Road:    "NH-51 via Veraval",
		},
		LocationURL: "https://maps.google.com/?q=Somnath+Temple",
	},
	{
		ID:          2,
		Name:        "Kashi Vishwanath",
		Location:    "Varanasi, Uttar Pradesh",
		Description: "The holiest Shiva temple on the banks of the Ganga, the heart of the eternal city of Kashi.",
		Significance: []string{
			"One of the twelve Jyotirlingas",
			"Moksha is said to be granted to those who die in Kashi",
		},
		Timings:          TempleTimings{Weekdays: "04:00 - 23:00", Weekends: "03:00 - 23:00"},
		PeakCrowd:        []string{"Maha Shivaratri", "Shravan Mondays"},
		BiggestHighlight: "Mangala aarti before dawn",
		NearestAccess: TempleAccess{
			Airport: "Lal Bahadur Shastri Airport (25 km)",
			Railway: "Varanasi Junction (5 km)",
			Road:    "NH-19 / NH-31",
		},
		LocationURL: "https://maps.google.com/?q=Kashi+Vishwanath+Temple",
	},
	{
		ID:          3,
		Name:        "Kedarnath",
		Location:    "Rudraprayag, Uttarakhand",
		Description: "High Himalayan abode of Lord Shiva at 3,583 m, reachable by a 16 km trek from Gaurikund.",
		Significance: []string{
			"One of the twelve Jyotirlingas",
			"Part of the Chota Char Dham circuit",
		},
		Timings:          TempleTimings{Weekdays: "04:00 - 21:00", Weekends: "04:00 - 21:00"},
		PeakCrowd:        []string{"May - June", "September"},
		BiggestHighlight: "Snow-capped peaks behind the sanctum",
		NearestAccess: TempleAccess{
			Airport: "Jolly Grant Airport, Dehradun (239 km)",
			Railway: "Rishikesh (216 km)",
			Road:    "Gaurikund, then on foot",
		},
		LocationURL: "https://maps.google.com/?q=Kedarnath+Temple",
	},
	{
		ID:          4,
		Name:        "Kalighat Temple",
		Location:    "Kolkata, West Bengal",
		Description: "One of the 51 Shakti Peethas, dedicated to Goddess Kali on the banks of the Adi Ganga.",
		Significance: []string{
			"Shakti Peetha where the toes of Sati fell",
		},
		Timings:          TempleTimings{Weekdays: "05:00 - 22:30", Weekends: "05:00 - 22:30"},
		PeakCrowd:        []string{"Kali Puja", "Saturdays"},
		BiggestHighlight: "The three-eyed idol of Kali",
		NearestAccess: TempleAccess{
			Airport: "Netaji Subhas Chandra Bose Airport (20 km)",
			Railway: "Kolkata (Sealdah) (8 km)",
			Road:    "Kalighat metro station",
		},
		LocationURL: "https://maps.google.com/?q=Kalighat+Temple",
	},
	{
		ID:          5,
		Name:        "ISKCON Temple Vrindavan",
		Location:    "Vrindavan, Uttar Pradesh",
		Description: "Sri Krishna Balaram Mandir, the spiritual home of the ISKCON movement in the land of Krishna.",
		Significance: []string{
			"Built at the site of Krishna's childhood pastimes",
		},
		Timings:          TempleTimings{Weekdays: "04:30 - 20:45", Weekends: "04:30 - 20:45"},
		PeakCrowd:        []string{"Janmashtami", "Holi"},
		BiggestHighlight: "Continuous kirtan since 1986",
		NearestAccess: TempleAccess{
			Airport: "Agra Airport (75 km)",
			Railway: "Mathura Junction (14 km)",
			Road:    "NH-44, Chhatikara road",
		},
		LocationURL: "https://maps.google.com/?q=ISKCON+Vrindavan",
	},
}
