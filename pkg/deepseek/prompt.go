package deepseek

import "fmt"

const systemPrompt = "You are a website analyzer. Return only valid JSON."

// buildPrompt asks for a strict JSON object so the json_object response
// format can be enforced and the reply decoded into apiResult.
func buildPrompt(url string) string {
	return fmt.Sprintf(`Analyze this website: %s

First, tell me what type of website this is. Choose ONE category:
- E-commerce / Retail (online store selling products)
- Service Provider (consulting, agency, professional services)
- Content / Media (blog, news, magazine)
- Business Website (corporate site)

Then provide a JSON response with this exact structure:
{
  "website_type": {
    "type": "the category you chose",
    "industry": "specific industry (e.g., Footwear Retail, Digital Marketing, Tech News)",
    "description": "brief description"
  },
  "ai_visibility_score": 65,
  "entity_score": 58,
  "entity_count": 24,
  "schema_score": 42,
  "schema_types": 3,
  "sge_score": 55,
  "ai_confidence": 70,
  "platform_scores": {
    "Google SGE": 62,
    "ChatGPT": 58,
    "Bard": 45
  }
}

Return ONLY valid JSON, no other text.`, url)
}
