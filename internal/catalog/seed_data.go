package catalog

// DefaultCatalog is the fixed candidate list the seeding batch imports.
// Cover paths are relative to the static asset host.
var DefaultCatalog = []SeedSong{
	{Title: "Psycho", Artist: "Dave", Album: "Psychodrama", Duration: "2:12", Genre: "Hip Hop", CoverURL: "/covers/dave-psychodrama.jpeg"},
	{Title: "Streatham", Artist: "Dave", Album: "Psychodrama", Duration: "3:17", Genre: "Hip Hop", CoverURL: "/covers/dave-psychodrama.jpeg"},
	{Title: "Black", Artist: "Dave", Album: "Psychodrama", Duration: "3:53", Genre: "Hip Hop", CoverURL: "/covers/dave-psychodrama.jpeg"},
	{Title: "Location (feat. Burna Boy)", Artist: "Dave", Album: "Psychodrama", Duration: "4:02", Genre: "Hip Hop", CoverURL: "/covers/dave-psychodrama.jpeg"},
	{Title: "Lesley (feat. Ruelle)", Artist: "Dave", Album: "Psychodrama", Duration: "11:05", Genre: "Hip Hop", CoverURL: "/covers/dave-psychodrama.jpeg"},
	{Title: "Verdansk", Artist: "Dave", Album: "We're All Alone in This Together", Duration: "3:03", Genre: "Hip Hop", CoverURL: "/covers/dave-we-re-all-alone-in-this-together.jpg"},
	{Title: "System (feat. Wizkid)", Artist: "Dave", Album: "We're All Alone in This Together", Duration: "3:53", Genre: "Hip Hop", CoverURL: "/covers/dave-we-re-all-alone-in-this-together.jpg"},
	{Title: "Twenty to One", Artist: "Dave", Album: "We're All Alone in This Together", Duration: "3:05", Genre: "Hip Hop", CoverURL: "/covers/dave-we-re-all-alone-in-this-together.jpg"},

	{Title: "Audacity (feat. Headie One)", Artist: "Stormzy", Album: "Heavy Is the Head", Duration: "4:07", Genre: "Hip Hop", CoverURL: "/covers/stormzy-heavy-is-the-head.png"},
	{Title: "Pop Boy (feat. Aitch)", Artist: "Stormzy", Album: "Heavy Is the Head", Duration: "3:43", Genre: "Hip Hop", CoverURL: "/covers/stormzy-heavy-is-the-head.png"},
	{Title: "Superheroes", Artist: "Stormzy", Album: "Heavy Is the Head", Duration: "3:48", Genre: "Hip Hop", CoverURL: "/covers/stormzy-heavy-is-the-head.png"},

	{Title: "January 28th", Artist: "J. Cole", Album: "2014 Forest Hills Drive", Duration: "3:36", Genre: "Hip Hop", CoverURL: "/covers/j-cole-2014-forest-hills-drive.jpg"},
	{Title: "Fire Squad", Artist: "J. Cole", Album: "2014 Forest Hills Drive", Duration: "4:48", Genre: "Hip Hop", CoverURL: "/covers/j-cole-2014-forest-hills-drive.jpg"},
	{Title: "Hello", Artist: "J. Cole", Album: "2014 Forest Hills Drive", Duration: "3:39", Genre: "Hip Hop", CoverURL: "/covers/j-cole-2014-forest-hills-drive.jpg"},

	{Title: "Come Back to Earth", Artist: "Mac Miller", Album: "Swimming", Duration: "2:41", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-swimming.jpg"},
	{Title: "Self Care", Artist: "Mac Miller", Album: "Swimming", Duration: "5:45", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-swimming.jpg"},
	{Title: "So It Goes", Artist: "Mac Miller", Album: "Swimming", Duration: "5:12", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-swimming.jpg"},
	{Title: "Good News", Artist: "Mac Miller", Album: "Circles", Duration: "5:42", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-circles.png"},
	{Title: "Hand Me Downs", Artist: "Mac Miller", Album: "Circles", Duration: "4:58", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-circles.png"},
	{Title: "Dang! (feat. Anderson .Paak)", Artist: "Mac Miller", Album: "The Divine Feminine", Duration: "5:05", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-the-divine-feminine.png"},
	{Title: "Cinderella (feat. Ty Dolla $ign)", Artist: "Mac Miller", Album: "The Divine Feminine", Duration: "8:00", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-the-divine-feminine.png"},
	{Title: "My Favorite Part (feat. Ariana Grande)", Artist: "Mac Miller", Album: "The Divine Feminine", Duration: "3:36", Genre: "Hip Hop", CoverURL: "/covers/mac-miller-the-divine-feminine.png"},

	{Title: "Dial Up", Artist: "Childish Gambino", Album: "Because the Internet", Duration: "1:24", Genre: "Hip Hop", CoverURL: "/covers/childish-gambino-because-the-internet.jpeg"},
	{Title: "Sweatpants", Artist: "Childish Gambino", Album: "Because the Internet", Duration: "3:00", Genre: "Hip Hop", CoverURL: "/covers/childish-gambino-because-the-internet.jpeg"},
	{Title: "No Exit", Artist: "Childish Gambino", Album: "Because the Internet", Duration: "2:52", Genre: "Hip Hop", CoverURL: "/covers/childish-gambino-because-the-internet.jpeg"},
	{Title: "Urn", Artist: "Childish Gambino", Album: "Because the Internet", Duration: "1:13", Genre: "Hip Hop", CoverURL: "/covers/childish-gambino-because-the-internet.jpeg"},

	{Title: "First", Artist: "Gallant", Album: "Ology", Duration: "1:20", Genre: "R&B", CoverURL: "/covers/gallant-ology.jpg"},
	{Title: "Bone + Tissue", Artist: "Gallant", Album: "Ology", Duration: "3:23", Genre: "R&B", CoverURL: "/covers/gallant-ology.jpg"},
	{Title: "Miyazaki", Artist: "Gallant", Album: "Ology", Duration: "3:22", Genre: "R&B", CoverURL: "/covers/gallant-ology.jpg"},
	{Title: "410 (Intro)", Artist: "Gallant", Album: "Sweet Insomnia", Duration: "0:53", Genre: "R&B", CoverURL: "/covers/gallant-sweet-insomnia.jpeg"},
	{Title: "Forever 21", Artist: "Gallant", Album: "Sweet Insomnia", Duration: "3:24", Genre: "R&B", CoverURL: "/covers/gallant-sweet-insomnia.jpeg"},
	{Title: "Céline", Artist: "Gallant", Album: "Sweet Insomnia", Duration: "3:53", Genre: "R&B", CoverURL: "/covers/gallant-sweet-insomnia.jpeg"},

	{Title: "Boulevard of Broken Dreams", Artist: "Green Day", Album: "American Idiot", Duration: "4:20", Genre: "Rock", CoverURL: "/covers/green-day-american-idiot.png"},
	{Title: "She's a Rebel", Artist: "Green Day", Album: "American Idiot", Duration: "2:00", Genre: "Rock", CoverURL: "/covers/green-day-american-idiot.png"},
	{Title: "Homecoming", Artist: "Green Day", Album: "American Idiot", Duration: "9:18", Genre: "Rock", CoverURL: "/covers/green-day-american-idiot.png"},

	{Title: "With You", Artist: "Linkin Park", Album: "Hybrid Theory", Duration: "3:23", Genre: "Rock", CoverURL: "/covers/linkin-park-hybrid-theory.jpg"},
	{Title: "By Myself", Artist: "Linkin Park", Album: "Hybrid Theory", Duration: "3:10", Genre: "Rock", CoverURL: "/covers/linkin-park-hybrid-theory.jpg"},
	{Title: "Cure for the Itch", Artist: "Linkin Park", Album: "Hybrid Theory", Duration: "2:37", Genre: "Rock", CoverURL: "/covers/linkin-park-hybrid-theory.jpg"},
	{Title: "Somewhere I Belong", Artist: "Linkin Park", Album: "Meteora", Duration: "3:34", Genre: "Rock", CoverURL: "/covers/linkin-park-meteora.jpg"},
	{Title: "Faint", Artist: "Linkin Park", Album: "Meteora", Duration: "2:42", Genre: "Rock", CoverURL: "/covers/linkin-park-meteora.jpg"},
	{Title: "Numb", Artist: "Linkin Park", Album: "Meteora", Duration: "3:07", Genre: "Rock", CoverURL: "/covers/linkin-park-meteora.jpg"},
	{Title: "Leave Out All the Rest", Artist: "Linkin Park", Album: "Minutes to Midnight", Duration: "3:29", Genre: "Rock", CoverURL: "/covers/linkin-park-minutes-to-midnight.jpg"},
	{Title: "Hands Held High", Artist: "Linkin Park", Album: "Minutes to Midnight", Duration: "3:53", Genre: "Rock", CoverURL: "/covers/linkin-park-minutes-to-midnight.jpg"},

	{Title: "Dance, Dance", Artist: "Fall Out Boy", Album: "From Under the Cork Tree", Duration: "3:00", Genre: "Rock", CoverURL: "/covers/fall-out-boy-from-under-the-cork-tree.jpg"},
	{Title: "7 Minutes in Heaven (Atavan Halen)", Artist: "Fall Out Boy", Album: "From Under the Cork Tree", Duration: "3:02", Genre: "Rock", CoverURL: "/covers/fall-out-boy-from-under-the-cork-tree.jpg"},
	{Title: "The Take Over, the Breaks Over", Artist: "Fall Out Boy", Album: "Infinity on High", Duration: "3:33", Genre: "Rock", CoverURL: "/covers/fall-out-boy-infinity-on-high.jpg"},
	{Title: "Golden", Artist: "Fall Out Boy", Album: "Infinity on High", Duration: "2:32", Genre: "Rock", CoverURL: "/covers/fall-out-boy-infinity-on-high.jpg"},

	{Title: "Hallelujah", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "3:00", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "Emperor's New Clothes", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "2:38", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "Death of a Bachelor", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "3:23", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "LA Devotee", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "3:16", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "Golden Days", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "4:14", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "House of Memories", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "3:28", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
	{Title: "Impossible Year", Artist: "Panic! at the Disco", Album: "Death of a Bachelor", Duration: "3:22", Genre: "Rock", CoverURL: "/covers/panic-at-the-disco-death-of-a-bachelor.png"},
}
