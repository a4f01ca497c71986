package roster

var staticExcludedNames = []string{
	"Lucas Marques",
	"Ana Martha Vazquez",
	"Bruno Montenegro",
	"Daniel Costa",
	"Fábio Assunção",
	"Franklin Passos",
	"Júlia Trindade",
	"Lais Melo",
	"Samara Amorim",
	"Silvânia Bertulina",
	"Wilian Nakamura",
	"Barbara Fraga",
	"Lívia Souza",
}

var staticLeaderHandles = map[string][]string{
	"Lara Silveira":        {"@SilvaniaAuditoria"},
	"João Gouveia":         {"@SilvaniaAuditoria"},
	"Juan Lucas":           {"@SilvaniaAuditoria"},
	"Luiza Correia":        {"@SilvaniaAuditoria"},
	"Nicolas Miranda":      {"@SilvaniaAuditoria"},
	"Pedro Vidal":          {"@SilvaniaAuditoria"},
	"Alexandre Andrade":    {"@NakamuraAuditoria"},
	"Caio Vilamaior":       {"@NakamuraAuditoria"},
	"Israel Brito":         {"@NakamuraAuditoria"},
	"Matheus Eufrásio":     {"@NakamuraAuditoria"},
	"Raul Costa":           {"@NakamuraAuditoria"},
	"Wether Rios":          {"@NakamuraAuditoria"},
	"Yuri Peixoto":         {"@NakamuraAuditoria"},
	"Ana Clara Gois":       {"@FranklinAuditoria"},
	"Cauã Amorim":          {"@FranklinAuditoria"},
	"Elissandra Alexandre": {"@FranklinAuditoria"},
	"Lara Farias":          {"@FranklinAuditoria"},
	"Sophie Viana":         {"@FranklinAuditoria"},
	"Yara Esteves":         {"@FranklinAuditoria"},
	"Yasmin Barros":        {"@FranklinAuditoria"},
	"Bruno Rocha":          {"@LaisAuditoria", "@SamaraAuditoria"},
	"Lucas Marques":        {"@LaisAuditoria", "@SamaraAuditoria"},
	"Marcos Morais":        {"@LaisAuditoria", "@SamaraAuditoria"},
	"Sylvia Meyer":         {"@LaisAuditoria", "@SamaraAuditoria"},
	"Amadeu Henrique":      {"@LaisAuditoria", "@SamaraAuditoria"},
	"Carlos Silva":         {"@LaisAuditoria", "@SamaraAuditoria"},
	"Judite Sombra":        {"@LaisAuditoria", "@SamaraAuditoria"},
	"Rafael Fontenelle":    {"@LaisAuditoria", "@SamaraAuditoria"},
	"Victor Teles":         {"@JuliaAuditoria"},
	"Vinícius Campos":      {"@JuliaAuditoria"},
	"Gustavo dos Santos":   {"@JuliaAuditoria"},
	"Julie Santander":      {"@JuliaAuditoria"},
	"Kaio de Oliveira":     {"@JuliaAuditoria"},
	"Nicole Vasconcelos":   {"@JuliaAuditoria"},
	"Vivian Rodrigues":     {"@JuliaAuditoria"},
	"Ana Martha Vazquez":   {"@BrunoAuditoria"},
	"Bruno Montenegro":     {"@BrunoAuditoria"},
	"Daniel Costa":         {"@BrunoAuditoria"},
	"Fábio Assunção":       {"@BrunoAuditoria"},
	"Franklin Passos":      {"@BrunoAuditoria"},
	"Júlia Trindade":       {"@BrunoAuditoria"},
	"Lais Melo":            {"@BrunoAuditoria"},
	"Samara Amorim":        {"@BrunoAuditoria"},
	"Silvânia Bertulina":   {"@BrunoAuditoria"},
	"Wilian Nakamura":      {"@BrunoAuditoria"},
	"Barbara Fraga":        {"@FabioAuditoria"},
	"Caio Chandler":        {"@FabioAuditoria"},
	"Emanuel Guimarães":    {"@FabioAuditoria"},
	"Valmir Soares":        {"@FabioAuditoria"},
	"Guilherme Alencar":    {"@FabioAuditoria"},
	"Jose Vitor":           {"@FabioAuditoria"},
	"Lorenzo Silva":        {"@FabioAuditoria"},
	"Manoel Victor":        {"@FabioAuditoria"},
	"Thiago Beserra":       {"@FabioAuditoria"},
	"Thiago Pereira":       {"@FabioAuditoria"},
	"Joyce Rolim":          {"@DanielAuditoria"},
	"Emilly Souza":         {"@DanielAuditoria"},
	"Maria Clara Assunção": {"@DanielAuditoria"},
	"Rafael Soares":        {"@DanielAuditoria"},
	"Remulo Wesley":        {"@DanielAuditoria"},
	"Rene Filho":           {"@DanielAuditoria"},
	"Carlos Heitor":        {"@AnaAuditoria"},
	"Flavio Sousa":         {"@AnaAuditoria"},
	"Fernanda Rabello":     {"@AnaAuditoria"},
	"Glailson Oliveira":    {"@AnaAuditoria"},
	"Joao Vitor":           {"@AnaAuditoria"},
	"Maicon Monteiro":      {"@AnaAuditoria"},
	"Sthefany Araújo":      {"@AnaAuditoria"},
	"Igor Benevides":       {"@SamaraAuditoria", "@LaisAuditoria"},
	"Lívia Souza":          {"@SamaraAuditoria", "@LaisAuditoria"},
	"Ana Rosa Freitas":     {"@SamaraAuditoria", "@LaisAuditoria"},
	"Bruna Lima":           {"@SamaraAuditoria", "@LaisAuditoria"},
	"Clara Gurgel":         {"@SamaraAuditoria", "@LaisAuditoria"},
	"Lilian Alves":         {"@SamaraAuditoria", "@LaisAuditoria"},
	"Thalita Gomes":        {"@SamaraAuditoria", "@LaisAuditoria"},
	"Yasmin Queiroz":       {"@SamaraAuditoria", "@LaisAuditoria"},
	"João Victor Fortes":   {"@DanielAuditoria"},
	"Ana Clara Aragão":     {"@SilvaniaAuditoria"},
}
