package prompt

import "fmt"

// Vision builds the instruction block of the multimodal request. The image
// attachments are appended by the client, one data URI per file.
func Vision(description string) string {
	context := ""
	if description != "" {
		context = fmt.Sprintf("\nContexto adicional fornecido pelo usuário: %s\n", description)
	}

	return fmt.Sprintf(`Você é um especialista em identificação visual de componentes e danos. Analise detalhadamente as imagens fornecidas.
%s
Sua tarefa:
1. Identifique o tipo de objeto/bem (veículo, mobília, imóvel, etc.)
2. Liste TODOS os componentes visíveis na imagem
3. Para cada componente visível, descreva DETALHADAMENTE:
   - O componente em si
   - Seu estado (perfeito, danificado, sujo, etc.)
   - Todos os danos visíveis (arranhões, amassados, rachaduras, desgastes, manchas, etc.)
   - Localização precisa de cada dano (lado esquerdo/direito, dianteiro/traseiro)
   - Tamanho aproximado dos danos

Exemplo para VEÍCULOS - componentes possíveis:
- Externos: Carroceria, Para-choques, Portas, Maçanetas, Capô, Porta-malas, Para-lamas, Para-brisa, Vidros, Retrovisores, Faróis, Lanternas, Rodas, Pneus, Grades, Emblemas
- Internos: Bancos, Volante, Painel, Console, Tapetes, Revestimentos

IMPORTANTE:
- Seja EXTREMAMENTE detalhado
- Não omita NENHUM componente visível
- Não omita NENHUM dano, por menor que seja
- Descreva a localização precisa de cada dano

Formato de resposta (texto livre, muito detalhado):`, context)
}
