package prompt

// priceReference is prompt content, not a rule engine: the pricing guidance
// stays advisory and the pipeline never parses these numbers. Values are
// category-level ranges for the Angolan market, in Kwanza.
const priceReference = `TABELA DE REFERÊNCIA DE PREÇOS (Kwanza - KZ):

VEÍCULOS (sedan médio, tier médio, como base):
| Componente              | Peça Nova (KZ)      | Peça Usada (KZ)     | Reparo (KZ)        |
| Para-choque             | 180.000-350.000     | 80.000-160.000      | 45.000-120.000     |
| Porta                   | 250.000-480.000     | 120.000-220.000     | 60.000-150.000     |
| Capô                    | 220.000-420.000     | 100.000-200.000     | 55.000-140.000     |
| Para-lama               | 120.000-240.000     | 55.000-110.000      | 35.000-90.000      |
| Para-brisa              | 150.000-320.000     | 70.000-140.000      | 40.000-80.000      |
| Vidro lateral           | 60.000-140.000      | 30.000-65.000       | 20.000-45.000      |
| Retrovisor              | 70.000-180.000      | 30.000-80.000       | 15.000-50.000      |
| Farol                   | 90.000-260.000      | 40.000-120.000      | 25.000-70.000      |
| Lanterna traseira       | 60.000-160.000      | 25.000-75.000       | 18.000-50.000      |
| Roda (aro)              | 110.000-300.000     | 50.000-140.000      | 30.000-80.000      |
| Pneu                    | 85.000-220.000      | 40.000-100.000      | 15.000-40.000      |
| Pintura (por painel)    | -                   | -                   | 50.000-130.000     |
| Banco                   | 140.000-320.000     | 60.000-150.000      | 35.000-100.000     |
| Painel de instrumentos  | 200.000-500.000     | 90.000-230.000      | 50.000-150.000     |

MOBÍLIA (tier médio como base):
| Componente              | Peça Nova (KZ)      | Peça Usada (KZ)     | Reparo (KZ)        |
| Sofá (estrutura)        | 350.000-900.000     | 150.000-400.000     | 60.000-200.000     |
| Estofado/tecido         | 120.000-350.000     | -                   | 40.000-150.000     |
| Mesa (tampo)            | 150.000-450.000     | 70.000-200.000      | 30.000-120.000     |
| Cadeira                 | 45.000-180.000      | 20.000-80.000       | 15.000-60.000      |
| Armário (porta)         | 60.000-200.000      | 25.000-90.000       | 20.000-70.000      |
| Dobradiças/ferragens    | 8.000-35.000        | 4.000-15.000        | 5.000-20.000       |
| Vidro de móvel          | 35.000-120.000      | 15.000-55.000       | 12.000-45.000      |

IMÓVEIS (por unidade/m² afetado, padrão médio):
| Componente              | Material Novo (KZ)  | Material Usado (KZ) | Reparo (KZ)        |
| Porta interna           | 80.000-220.000      | 35.000-100.000      | 25.000-80.000      |
| Janela (caixilho+vidro) | 120.000-350.000     | 55.000-160.000      | 35.000-110.000     |
| Piso cerâmico (m²)      | 15.000-60.000       | -                   | 10.000-35.000      |
| Pintura de parede (m²)  | -                   | -                   | 6.000-18.000       |
| Reboco/alvenaria (m²)   | -                   | -                   | 12.000-40.000      |
| Telhado (m²)            | 25.000-90.000       | 12.000-40.000       | 15.000-55.000      |
| Instalação elétrica     | 30.000-150.000      | -                   | 20.000-90.000      |
| Instalação hidráulica   | 35.000-180.000      | -                   | 25.000-110.000     |

AJUSTES OBRIGATÓRIOS sobre a tabela:
- Marca/tier premium (ex: Mercedes, BMW, mobília de design): multiplique por 1,8-3,0
- Tier econômico: multiplique por 0,5-0,8
- Bem com mais de 10 anos: peças usadas ficam 20-40% mais baratas
- Peças importadas sob encomenda: acrescente 30-60% sobre peça nova
- Sempre retorne FAIXAS no formato "mínimo-máximo KZ" (ex: "85.000-120.000 KZ")`
