package room

// The demonstration catalog shown when the gateway has no usable data. The
// room list page must never be empty, so this is the last tier of the
// availability fallback chain. None of these entries are bookable.
var fallbackCatalog = []Room{
	{
		Type:        "Deluxe King",
		Price:       199,
		Description: "Spacious room with a king bed, rainfall shower, and city skyline views.",
		PhotoURL:    "/assets/images/rooms/download.jpg",
	},
	{
		Type:        "Premium Twin",
		Price:       159,
		Description: "Two plush twin beds, ergonomic workspace, perfect for friends or colleagues.",
		PhotoURL:    "/assets/images/rooms/download (1).jpg",
	},
	{
		Type:        "Executive Suite",
		Price:       289,
		Description: "Separate living area, dining nook, and complimentary executive lounge access.",
		PhotoURL:    "/assets/images/rooms/download (2).jpg",
	},
	{
		Type:        "Family Deluxe",
		Price:       219,
		Description: "Ideal for families with two queen beds, sofa sleeper, and kid-friendly amenities.",
		PhotoURL:    "/assets/images/rooms/download (3).jpg",
	},
	{
		Type:        "Ocean View King",
		Price:       249,
		Description: "Panoramic ocean vistas, private balcony, and in-room espresso station.",
		PhotoURL:    "/assets/images/rooms/download (4).jpg",
	},
	{
		Type:        "Garden Terrace",
		Price:       189,
		Description: "Ground-floor room with private terrace opening onto tranquil gardens.",
		PhotoURL:    "/assets/images/rooms/download (5).jpg",
	},
	{
		Type:        "Presidential Suite",
		Price:       499,
		Description: "Two-bedroom suite with grand living room, kitchenette, and butler service.",
		PhotoURL:    "/assets/images/rooms/download (6).jpg",
	},
	{
		Type:        "Wellness Retreat",
		Price:       269,
		Description: "In-room yoga gear, air purification, and complimentary spa hydrotherapy pass.",
		PhotoURL:    "/assets/images/rooms/images.jpg",
	},
	{
		Type:        "Business Studio",
		Price:       179,
		Description: "Open-concept layout with sit-stand desk, fast Wi-Fi, and smart TV conferencing.",
		PhotoURL:    "/assets/images/rooms/images (1).jpg",
	},
	{
		Type:        "Loft Penthouse",
		Price:       379,
		Description: "Bi-level loft with floor-to-ceiling windows, soaking tub, and private rooftop deck.",
		PhotoURL:    "/assets/images/rooms/images (2).jpg",
	},
	{
		Type:        "Skyline Premier",
		Price:       269,
		Description: "Upper-floor haven boasting wraparound windows and curated mini bar.",
		PhotoURL:    "/assets/images/rooms/images (3).jpg",
	},
	{
		Type:        "Courtyard Queen",
		Price:       169,
		Description: "Cozy retreat with a plush queen bed and soothing courtyard views.",
		PhotoURL:    "/assets/images/rooms/images (4).jpg",
	},
	{
		Type:        "Artist Loft",
		Price:       239,
		Description: "Industrial-chic loft with curated artwork and open-plan living space.",
		PhotoURL:    "/assets/images/rooms/images (5).jpg",
	},
	{
		Type:        "Honeymoon Hideaway",
		Price:       299,
		Description: "Romantic suite featuring a four-poster bed, whirlpool tub, and candlelight lighting package.",
		PhotoURL:    "/assets/images/rooms/images (6).jpg",
	},
}

// FallbackCatalog returns a copy so callers cannot mutate the shared slice.
func FallbackCatalog() []Room {
	out := make([]Room, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

func FallbackRoomTypes() []string {
	return TypesOf(fallbackCatalog)
}
