package memory

import "github.com/gpbuil/fifa2026-new/internal/domain/team"

// SeedTeams is the 48-team tournament field in seed order. Placeholder slots
// cover the playoff berths not yet decided at seeding time.
func SeedTeams() []team.Team {
	return []team.Team{
		// Group A
		{ID: "MEX", Name: "México", Flag: "🇲🇽", ISO2: "mx", Group: "A"},
		{ID: "RSA", Name: "África do Sul", Flag: "🇿🇦", ISO2: "za", Group: "A"},
		{ID: "KOR", Name: "Coreia do Sul", Flag: "🇰🇷", ISO2: "kr", Group: "A"},
		{ID: "UEFA_D", Name: "Repescagem UEFA D", Flag: "🇪🇺", ISO2: "eu", Group: "A"},
		// Group B
		{ID: "CAN", Name: "Canadá", Flag: "🇨🇦", ISO2: "ca", Group: "B"},
		{ID: "QAT", Name: "Catar", Flag: "🇶🇦", ISO2: "qa", Group: "B"},
		{ID: "SUI", Name: "Suíça", Flag: "🇨🇭", ISO2: "ch", Group: "B"},
		{ID: "UEFA_A", Name: "Repescagem UEFA A", Flag: "🇪🇺", ISO2: "eu", Group: "B"},
		// Group C
		{ID: "BRA", Name: "Brasil", Flag: "🇧🇷", ISO2: "br", Group: "C"},
		{ID: "MAR", Name: "Marrocos", Flag: "🇲🇦", ISO2: "ma", Group: "C"},
		{ID: "SCO", Name: "Escócia", Flag: "🏴󠁧󠁢󠁳󠁣󠁴󠁿", ISO2: "gb-sct", Group: "C"},
		{ID: "HAI", Name: "Haiti", Flag: "🇭🇹", ISO2: "ht", Group: "C"},
		// Group D
		{ID: "USA", Name: "Estados Unidos", Flag: "🇺🇸", ISO2: "us", Group: "D"},
		{ID: "PAR", Name: "Paraguai", Flag: "🇵🇾", ISO2: "py", Group: "D"},
		{ID: "AUS", Name: "Austrália", Flag: "🇦🇺", ISO2: "au", Group: "D"},
		{ID: "UEFA_C", Name: "Repescagem UEFA C", Flag: "🇪🇺", ISO2: "eu", Group: "D"},
		// Group E
		{ID: "GER", Name: "Alemanha", Flag: "🇩🇪", ISO2: "de", Group: "E"},
		{ID: "ECU", Name: "Equador", Flag: "🇪🇨", ISO2: "ec", Group: "E"},
		{ID: "CIV", Name: "C. do Marfim", Flag: "🇨🇮", ISO2: "ci", Group: "E"},
		{ID: "CUR", Name: "Curaçao", Flag: "🇨🇼", ISO2: "cw", Group: "E"},
		// Group F
		{ID: "NED", Name: "Holanda", Flag: "🇳🇱", ISO2: "nl", Group: "F"},
		{ID: "JPN", Name: "Japão", Flag: "🇯🇵", ISO2: "jp", Group: "F"},
		{ID: "TUN", Name: "Tunísia", Flag: "🇹🇳", ISO2: "tn", Group: "F"},
		{ID: "UEFA_F", Name: "Repescagem UEFA F", Flag: "🇪🇺", ISO2: "eu", Group: "F"},
		// Group G
		{ID: "BEL", Name: "Bélgica", Flag: "🇧🇪", ISO2: "be", Group: "G"},
		{ID: "EGY", Name: "Egito", Flag: "🇪🇬", ISO2: "eg", Group: "G"},
		{ID: "IRN", Name: "Irã", Flag: "🇮🇷", ISO2: "ir", Group: "G"},
		{ID: "NZL", Name: "N. Zelândia", Flag: "🇳🇿", ISO2: "nz", Group: "G"},
		// Group H
		{ID: "ESP", Name: "Espanha", Flag: "🇪🇸", ISO2: "es", Group: "H"},
		{ID: "URU", Name: "Uruguai", Flag: "🇺🇾", ISO2: "uy", Group: "H"},
		{ID: "KSA", Name: "Arábia Saudita", Flag: "🇸🇦", ISO2: "sa", Group: "H"},
		{ID: "CPV", Name: "Cabo Verde", Flag: "🇨🇻", ISO2: "cv", Group: "H"},
		// Group I
		{ID: "FRA", Name: "França", Flag: "🇫🇷", ISO2: "fr", Group: "I"},
		{ID: "SEN", Name: "Senegal", Flag: "🇸🇳", ISO2: "sn", Group: "I"},
		{ID: "NOR", Name: "Noruega", Flag: "🇳🇴", ISO2: "no", Group: "I"},
		{ID: "INTER_2", Name: "Repescagem Inter. 2", Flag: "🇺🇳", ISO2: "un", Group: "I"},
		// Group J
		{ID: "ARG", Name: "Argentina", Flag: "🇦🇷", ISO2: "ar", Group: "J"},
		{ID: "AUT", Name: "Áustria", Flag: "🇦🇹", ISO2: "at", Group: "J"},
		{ID: "ALG", Name: "Argélia", Flag: "🇩🇿", ISO2: "dz", Group: "J"},
		{ID: "JOR", Name: "Jordânia", Flag: "🇯🇴", ISO2: "jo", Group: "J"},
		// Group K
		{ID: "POR", Name: "Portugal", Flag: "🇵🇹", ISO2: "pt", Group: "K"},
		{ID: "COL", Name: "Colômbia", Flag: "🇨🇴", ISO2: "co", Group: "K"},
		{ID: "UZB", Name: "Uzbequistão", Flag: "🇺🇿", ISO2: "uz", Group: "K"},
		{ID: "INTER_1", Name: "Repescagem Inter. 1", Flag: "🇺🇳", ISO2: "un", Group: "K"},
		// Group L
		{ID: "ENG", Name: "Inglaterra", Flag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", ISO2: "gb-eng", Group: "L"},
		{ID: "CRO", Name: "Croácia", Flag: "🇭🇷", ISO2: "hr", Group: "L"},
		{ID: "GHA", Name: "Gana", Flag: "🇬🇭", ISO2: "gh", Group: "L"},
		{ID: "PAN", Name: "Panamá", Flag: "🇵🇦", ISO2: "pa", Group: "L"},
	}
}
