package help

const ColdstartYAML = `# svoyak Quick Start

input:
  text: "UTF-8 transcript, one line per paragraph (.txt or anything not .html)"
  html: "Saved web page (.html/.htm); main content is extracted first"

commands:
  build: |
    svoyak build --input pack.txt

  build_to_dir: |
    svoyak build --input pack.txt --out-dir rounds --prefix final --format docx,md

  fixed_split: |
    svoyak build --input pack.txt --split 10,10,9,9

  strict_markers: |
    svoyak build --input pack.txt --strategy markers

  dry_run: |
    svoyak build --input pack.txt --dry-run

  inspect_themes: |
    svoyak themes --input pack.txt

  plan_split: |
    svoyak split --total 38
    svoyak split --total 38 --split 10,10,10,8

  preview: |
    svoyak preview --input pack.txt --block 2

  sqlite_export: |
    svoyak build --input pack.txt --sqlite pack.db
    svoyak db rounds pack.db
    svoyak db round pack.db 2

outputs:
  - "<prefix>_<n>.docx (one per block, Times New Roman 14pt)"
  - "<prefix>_manifest.yaml (themes detected, dropped, sizes, files)"
  - "optional SQLite file with runs, rounds, themes, questions, artifacts"

partition_rules:
  - "Blocks hold 9-12 themes by default (--min, --max)"
  - "Beyond 100 themes blocks hold 10-11"
  - "--split is used only when it sums to the theme count and fits the bounds"
  - "Otherwise themes are spread as evenly as possible"

question_rules:
  - "A question line starts with a price: a positive multiple of 10"
  - "Lines starting with service words (Раунд, Ответ, Источник...) are not questions"
  - "Each theme keeps the best 5 prices forming an even ladder, renumbered 10..50"
  - "Themes without a single usable question are dropped"

config_file: |
  language: auto        # auto | ru | en
  detector: {block_size: 5, max_window: 30}
  segment: {strategy: blocks}
  selector: {max_candidates: 25}
  partition: {min_size: 9, max_size: 12, large_threshold: 100, strategy: even}
  output: {dir: ".", formats: [docx]}
`
