package cli

import "jeoparty-service/internal/domain"

// builtinCatalog provides the bundled question bank used when no Postgres
// backend is configured; swap the loader for a database-backed one in
// production.
func builtinCatalog() domain.Catalog {
	return domain.Catalog{Categories: []domain.Category{
		{
			ID:    "world_history",
			Title: "World History",
			Questions: []domain.Question{
				{ID: "wh1", Value: 100, Prompt: "The ancient Maya civilization was concentrated in which present-day region?", Answer: "Central America", Options: []string{"South America", "Central America", "North Africa", "East Asia"}},
				{ID: "wh2", Value: 200, Prompt: "Which ruler was defeated by the Seventh Coalition at Waterloo and exiled?", Answer: "Napoleon Bonaparte", Options: []string{"Louis XVI", "Napoleon Bonaparte", "Peter the Great", "Charlemagne"}},
				{ID: "wh3", Value: 300, Prompt: "The longest war in history, lasting 335 years with no casualties, was fought between which two parties?", Answer: "The Netherlands and the Isles of Scilly", Options: []string{"England and France", "The Netherlands and the Isles of Scilly", "Spain and Portugal", "China and Japan"}},
				{ID: "wh4", Value: 400, Prompt: "In which year was the Peace of Westphalia signed, ending the Thirty Years' War?", Answer: "1648", Options: []string{"1492", "1648", "1789", "1815"}},
				{ID: "wh5", Value: 500, Prompt: "Who was the last Byzantine emperor, killed sword in hand during the fall of Constantinople?", Answer: "Constantine XI", Options: []string{"Justinian I", "Constantine XI", "Theodosius II", "Basil II"}},
			},
		},
		{
			ID:    "science_astronomy",
			Title: "Science & Astronomy",
			Questions: []domain.Question{
				{ID: "sa1", Value: 100, Prompt: "Which planet in the solar system has the shortest day, at about 10 hours?", Answer: "Jupiter", Options: []string{"Mercury", "Mars", "Jupiter", "Saturn"}},
				{ID: "sa2", Value: 200, Prompt: "The pineal gland in the human brain secretes which sleep hormone?", Answer: "Melatonin", Options: []string{"Serotonin", "Dopamine", "Melatonin", "Cortisol"}},
				{ID: "sa3", Value: 300, Prompt: "Which physical constant relates a photon's energy to its frequency?", Answer: "Planck constant", Options: []string{"Boltzmann constant", "Avogadro constant", "Hubble constant", "Planck constant"}},
				{ID: "sa4", Value: 400, Prompt: "In the Standard Model, which particle carries the strong nuclear force?", Answer: "Gluon", Options: []string{"Photon", "W boson", "Gluon", "Graviton"}},
				{ID: "sa5", Value: 500, Prompt: "Which astrophysicist discovered the first pulsar in 1967?", Answer: "Jocelyn Bell Burnell", Options: []string{"Marie Curie", "Vera Rubin", "Jocelyn Bell Burnell", "Sally Ride"}},
			},
		},
		{
			ID:    "literature_philosophy",
			Title: "Literature & Philosophy",
			Questions: []domain.Question{
				{ID: "lp1", Value: 100, Prompt: "The concept of the Ubermensch first appeared in which work by Friedrich Nietzsche?", Answer: "Thus Spoke Zarathustra", Options: []string{"Beyond Good and Evil", "On the Genealogy of Morality", "Thus Spoke Zarathustra", "Twilight of the Idols"}},
				{ID: "lp2", Value: 200, Prompt: "James Joyce's novel Ulysses recounts a single day in which city?", Answer: "Dublin", Options: []string{"London", "Paris", "Dublin", "Edinburgh"}},
				{ID: "lp3", Value: 300, Prompt: "Which ancient Greek playwright, author of The Persians, is known as the father of tragedy?", Answer: "Aeschylus", Options: []string{"Sophocles", "Euripides", "Aristophanes", "Aeschylus"}},
				{ID: "lp4", Value: 400, Prompt: "Which statesman won the Nobel Prize in Literature in 1953?", Answer: "Winston Churchill", Options: []string{"Theodore Roosevelt", "Jean-Paul Sartre", "Charles de Gaulle", "Winston Churchill"}},
				{ID: "lp5", Value: 500, Prompt: "In George Orwell's 1984, what is the name of the room where people face their greatest fear?", Answer: "Room 101", Options: []string{"Room 237", "Room 101", "Section 42", "Cell Zero"}},
			},
		},
		{
			ID:    "advanced_geography",
			Title: "Advanced Geography",
			Questions: []domain.Question{
				{ID: "ag1", Value: 100, Prompt: "What is the deepest known point in the world's oceans?", Answer: "Mariana Trench", Options: []string{"Puerto Rico Trench", "Mariana Trench", "Tonga Trench", "Java Trench"}},
				{ID: "ag2", Value: 200, Prompt: "Which African country is entirely enclosed within South Africa?", Answer: "Lesotho", Options: []string{"Eswatini", "Botswana", "Namibia", "Lesotho"}},
				{ID: "ag3", Value: 300, Prompt: "What is the capital of the country home to Mount Kilimanjaro?", Answer: "Dodoma", Options: []string{"Nairobi", "Dodoma", "Kampala", "Kigali"}},
				{ID: "ag4", Value: 400, Prompt: "The Bass Strait separates which island from mainland Australia?", Answer: "Tasmania", Options: []string{"New Zealand", "New Guinea", "Tasmania", "New Caledonia"}},
				{ID: "ag5", Value: 500, Prompt: "Lake Vostok, the largest known subglacial lake, lies on which continent?", Answer: "Antarctica", Options: []string{"North America", "Asia", "Europe", "Antarctica"}},
			},
		},
		{
			ID:    "arts_music",
			Title: "Arts & Music",
			Questions: []domain.Question{
				{ID: "am1", Value: 100, Prompt: "Which classical composer lost his hearing in his late twenties yet kept producing masterpieces?", Answer: "Ludwig van Beethoven", Options: []string{"Johann Sebastian Bach", "Wolfgang Amadeus Mozart", "Ludwig van Beethoven", "Frederic Chopin"}},
				{ID: "am2", Value: 200, Prompt: "Which early 20th-century art movement, featuring Dali and Magritte, focused on the unconscious mind?", Answer: "Surrealism", Options: []string{"Impressionism", "Cubism", "Dadaism", "Surrealism"}},
				{ID: "am3", Value: 300, Prompt: "The marble statue of David in Florence is the work of which Renaissance master?", Answer: "Michelangelo", Options: []string{"Leonardo da Vinci", "Michelangelo", "Donatello", "Raphael"}},
				{ID: "am4", Value: 400, Prompt: "Who composed the Ring of the Nibelung, whose four parts take about 15 hours to perform?", Answer: "Richard Wagner", Options: []string{"Giuseppe Verdi", "Richard Wagner", "Giacomo Puccini", "Pyotr Ilyich Tchaikovsky"}},
				{ID: "am5", Value: 500, Prompt: "The painting technique chiaroscuro, perfected by Caravaggio, refers to what?", Answer: "Strong contrast of light and shadow", Options: []string{"Painting with dots", "Strong contrast of light and shadow", "Combining complementary colors", "Scraping paint off the canvas"}},
			},
		},
		{
			ID:    "riddles_trivia",
			Title: "Riddles & Trivia",
			Questions: []domain.Question{
				{ID: "rt1", Value: 100, Prompt: "What is the hardest known natural material on Earth, made of pure carbon?", Answer: "Diamond", Options: []string{"Graphene", "Titanium", "Diamond", "Quartz"}},
				{ID: "rt2", Value: 200, Prompt: "Which is the only letter of the English alphabet that appears in no US state name?", Answer: "Q", Options: []string{"X", "Z", "J", "Q"}},
				{ID: "rt3", Value: 300, Prompt: "In psychology, Stendhal syndrome strikes people in what situation?", Answer: "Viewing exceptionally beautiful art", Options: []string{"Fear of heights", "Viewing exceptionally beautiful art", "Total darkness", "Hearing certain sounds"}},
				{ID: "rt4", Value: 400, Prompt: "In game theory, which famous dilemma shows why two parties may refuse to cooperate even when it benefits them?", Answer: "Prisoner's dilemma", Options: []string{"Monty Hall problem", "Prisoner's dilemma", "Ultimatum game", "Tragedy of the commons"}},
				{ID: "rt5", Value: 500, Prompt: "Which constructed language, with only about 120 to 137 words, is one of the world's smallest?", Answer: "Toki Pona", Options: []string{"Esperanto", "Klingon", "Toki Pona", "Interlingua"}},
			},
		},
	}}
}
