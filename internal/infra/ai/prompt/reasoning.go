package prompt

import (
	"fmt"
	"strings"

	"github.com/avarialab/avaria/internal/domain/analysis"
)

// Reasoning builds the text-only synthesis prompt: vision text verbatim,
// user context, asset metadata summary, the price-reference table and the
// strict JSON output contract.
func Reasoning(visionText, description string, asset analysis.AssetInfo) string {
	userContext := description
	if userContext == "" {
		userContext = "Não fornecido"
	}

	return fmt.Sprintf(`Você é um especialista em análise sistemática de danos e avaliação de custos com raciocínio avançado.

CONTEXTO DO USUÁRIO:
%s

DADOS DO BEM:
%s

DESCRIÇÃO VISUAL DETALHADA (fornecida por análise de imagem):
%s

%s

Sua tarefa é fazer uma análise SISTEMÁTICA E EXAUSTIVA seguindo esta metodologia OBRIGATÓRIA:

ETAPA 1 - IDENTIFICAÇÃO DO OBJETO:
Identifique o tipo de objeto/bem descrito na análise visual.

ETAPA 2 - MAPEAMENTO COMPLETO DE COMPONENTES:
Liste TODOS os componentes que este tipo de objeto possui (mesmo que não estejam visíveis na descrição).

Para VEÍCULOS, considere:
- Elementos Externos: Carroceria, Para-choques (dianteiro/traseiro), Portas (todas), Maçanetas, Capô, Tampa do porta-malas, Para-lamas (todos), Para-brisa, Vidros laterais, Vidros traseiros, Retrovisores (externo direito/esquerdo/interno), Faróis (direito/esquerdo), Lanternas traseiras, Luzes de freio, Setas, Rodas (todas 4), Pneus, Grades, Emblemas, Antena, Teto, Teto solar, Aerofólio, Spoiler, Saias laterais
- Elementos Internos: Bancos (dianteiros/traseiros), Volante, Painel de instrumentos, Console central, Porta-luvas, Cintos de segurança, Tapetes, Revestimentos de porta, Teto interno, Ar-condicionado

ETAPA 3 - ANÁLISE SISTEMÁTICA DE CADA COMPONENTE:
Para CADA componente listado acima:
a) Verifique se foi mencionado na descrição visual
b) Se mencionado, verifique se há algum dano descrito
c) Se houver dano, crie uma entrada SEPARADA para cada dano específico

ETAPA 4 - ESTIMATIVA DE CUSTOS:
Para CADA dano, estime os preços em Kwanza (KZ) usando a tabela de referência acima, ajustados pela marca, tier de qualidade e idade do bem.

FORMATO DE SAÍDA JSON OBRIGATÓRIO:

{
  "summary": "Tipo de bem + resumo completo da análise incluindo quantos componentes foram examinados e extensão dos danos",
  "damageItems": [
    {
      "itemName": "Nome ESPECÍFICO do componente (ex: Para-choque Dianteiro, Porta Traseira Esquerda, Farol Direito)",
      "itemType": "Categoria (ex: Elemento Externo - Carroceria, Iluminação, Vidros)",
      "severity": "low|moderate|high",
      "description": "Descrição MUITO detalhada do dano: tipo (arranhão/amassado/rachadura/etc), localização PRECISA no componente, dimensões, características visuais",
      "estimatedImpact": "Impacto funcional, recomendações de reparo e urgência",
      "priceNew": "Preço da peça nova em KZ (ex: 85.000-120.000 KZ)",
      "priceUsed": "Preço da peça usada em KZ",
      "repairCost": "Custo estimado do reparo em KZ"
    }
  ]
}

REGRAS ABSOLUTAS:
- Examine SISTEMATICAMENTE cada componente mencionado na descrição visual
- NÃO pule nenhum componente - verifique TODOS
- Para CADA dano encontrado, crie uma entrada SEPARADA
- Liste ABSOLUTAMENTE TODOS os danos descritos SEM LIMITE
- Cada arranhão, rachadura, amassado, desgaste, mancha, quebra = entrada separada
- Inclua até danos pequenos e superficiais
- Severity: "low" (superficial/estético), "moderate" (função parcial), "high" (estrutural/grave)
- TODOS os campos de preço (priceNew, priceUsed, repairCost) são OBRIGATÓRIOS em cada item
- Seja EXTREMAMENTE detalhado nas descrições
- Use português formal
- Especifique localização PRECISA de cada dano

IMPORTANTE CRÍTICO:
- A lista deve ser COMPLETA e EXAUSTIVA
- Não omita NADA mencionado na descrição visual
- Se a descrição menciona "vários arranhões", liste cada um separadamente
- Verifique CADA componente da lista de mapeamento

Retorne APENAS o objeto JSON válido, sem markdown ou texto adicional.`,
		userContext, AssetSummary(asset), visionText, priceReference)
}

// AssetSummary formats the user-supplied asset metadata for the prompt.
func AssetSummary(asset analysis.AssetInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tipo de bem: %s", assetTypeLabel(asset.AssetType))
	if asset.Brand != "" {
		fmt.Fprintf(&b, "\nMarca: %s", asset.Brand)
	}
	if asset.Model != "" {
		fmt.Fprintf(&b, "\nModelo: %s", asset.Model)
	}
	if asset.Year != "" {
		fmt.Fprintf(&b, "\nAno: %s", asset.Year)
	}
	if asset.Quality != "" {
		fmt.Fprintf(&b, "\nTier de qualidade: %s", qualityLabel(asset.Quality))
	}
	return b.String()
}

func assetTypeLabel(t analysis.AssetType) string {
	switch t {
	case analysis.AssetVehicle:
		return "Veículo"
	case analysis.AssetFurniture:
		return "Mobília"
	case analysis.AssetRealEstate:
		return "Imóvel"
	case analysis.AssetOther:
		return "Outro"
	}
	return "Não informado"
}

func qualityLabel(q analysis.Quality) string {
	switch q {
	case analysis.QualityPremium:
		return "Premium"
	case analysis.QualityMedium:
		return "Médio"
	case analysis.QualityEconomy:
		return "Econômico"
	}
	return string(q)
}
