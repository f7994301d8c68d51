package help

const ColdstartYAML = `# website-analyzer Quick Start

depth_levels:
  basic: "Narrow score ranges, small entity lists (default, fastest)"
  advanced: "Mid-tier ranges, entity counts roughly 20-45"
  deep: "Widest ranges, highest floors and ceilings"

analysis_sources:
  mock: "Locally generated metrics (no API key needed)"
  deepseek: "DeepSeek chat-completions, falls back to mock on any failure"

commands:
  basic_analysis: |
    website-analyzer analyze --urls "https://example-shoestore.com"

  deep_analysis: |
    website-analyzer analyze --urls "https://example.com" --depth deep

  with_deepseek: |
    DEEPSEEK_API_KEY=sk-... website-analyzer analyze --urls "https://example.com"

  with_page_probe: |
    website-analyzer analyze --urls "https://example.com" --probe

  custom_platforms: |
    website-analyzer analyze --urls "https://example.com" --platforms "ChatGPT,Claude"

  yaml_output: |
    website-analyzer analyze --urls "https://example.com" --output yaml

  list_history: |
    website-analyzer db history

  show_analysis: |
    website-analyzer db show 5

key_files:
  - "analyzer-results/index.yaml (all reports)"
  - "analyzer-results/reports/<id>.json (per-analysis reports)"
  - "website-analyzer.db (analysis history, next to the binary)"

classification:
  - "Category is a pure function of URL + domain: keyword substring tables"
  - "Table order is the tie-break: commerce, then services, then media"
  - "Unmatched URLs get the Business Website category"
  - "The DeepSeek path keeps the local category verdict, always"

caching:
  - "DeepSeek replies cached by sha256(url|depth) under the results dir"
  - "--max-age controls freshness (default 24h), --force bypasses"

db_commands:
  history: "List recent analyses (--limit, --domain)"
  show_id: "Print one analysis as YAML"
  init: "Initialize database schema"
`
